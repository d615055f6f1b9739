package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/pkg/catalogs"
)

func ids(lenses []catalogs.Lens) []string {
	out := make([]string, len(lenses))
	for i, l := range lenses {
		out[i] = l.ID
	}
	return out
}

// scenarioLenses are the two lenses from the canonical filter scenario.
func scenarioLenses() []catalogs.Lens {
	return []catalogs.Lens{
		{ID: "a", Name: "Zoom", Manufacturer: "X", FocalRange: catalogs.FocalRange{Min: 24, Max: 70}, MaxAperture: 2.8, Rentable: true},
		{ID: "b", Name: "Prime", Manufacturer: "Y", FocalRange: catalogs.FocalRange{Min: 50, Max: 50}, MaxAperture: 1.4, Rentable: false},
	}
}

func TestScenario(t *testing.T) {
	lenses := scenarioLenses()

	t.Run("only rentable", func(t *testing.T) {
		got := Apply(lenses, Criteria{OnlyRentable: true})
		assert.Equal(t, []string{"a"}, ids(got))
	})

	t.Run("focal window overlaps both", func(t *testing.T) {
		got := Apply(lenses, NewCriteria(WithFocalLength(40, 60)))
		assert.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("search by manufacturer", func(t *testing.T) {
		got := Apply(lenses, Criteria{SearchQuery: "Y"})
		assert.Equal(t, []string{"b"}, ids(got))
	})
}

func TestIdentityFilter(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	got := Apply(lenses, Criteria{})
	assert.Equal(t, lenses, got)
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, NewCriteria().IsEmpty())
	assert.True(t, Criteria{SearchQuery: "   "}.IsEmpty(), "whitespace-only search is absent")

	empty := Apply(nil, Criteria{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	lenses := catalogs.TestLenses(t)
	before := make([]catalogs.Lens, len(lenses))
	for i, l := range lenses {
		before[i] = l.Copy()
	}

	got := Apply(lenses, NewCriteria(WithManufacturer("x")))
	require.Len(t, got, 2)
	assert.Equal(t, before, lenses)

	got[0].Name = "changed"
	assert.NotEqual(t, "changed", lenses[0].Name)
}

func TestApplyPreservesOrder(t *testing.T) {
	lenses := catalogs.TestLenses(t)
	reversed := make([]catalogs.Lens, len(lenses))
	for i, l := range lenses {
		reversed[len(lenses)-1-i] = l
	}

	got := Apply(reversed, NewCriteria(OnlyRentable()))
	assert.Equal(t, []string{"e", "d", "c", "a"}, ids(got))
}

func TestEqualityFilters(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"manufacturer", NewCriteria(WithManufacturer("Y")), []string{"b", "e"}},
		{"manufacturer ignores case and padding", NewCriteria(WithManufacturer("  x ")), []string{"a", "c"}},
		{"unknown manufacturer", NewCriteria(WithManufacturer("Q")), []string{}},
		{"format", NewCriteria(WithFormat("super35")), []string{"a", "d", "e"}},
		{"format ignores case", NewCriteria(WithFormat("FULL-FRAME")), []string{"a", "b", "c"}},
		{"derived category", NewCriteria(WithCategory(catalogs.CategoryUltraWide)), []string{"c"}},
		{"derived standard category", NewCriteria(WithCategory(catalogs.CategoryStandard)), []string{"a", "b"}},
		{"explicit category", NewCriteria(WithCategory(catalogs.CategoryTelephoto)), []string{"e"}},
		{"super telephoto from midpoint", NewCriteria(WithCategory(catalogs.CategorySuperTelephoto)), []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(lenses, tt.criteria)))
		})
	}
}

func TestFocalLengthOverlap(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"window inside zoom range", NewCriteria(WithFocalLength(30, 40)), []string{"a"}},
		{"window touching prime exactly", NewCriteria(WithFocalLength(50, 50)), []string{"a", "b"}},
		{"window covering 85 to 100", NewCriteria(WithFocalLength(85, 100)), []string{"d", "e"}},
		{"lower bound only", NewCriteria(WithMinFocalLength(71)), []string{"d", "e"}},
		{"upper bound only", NewCriteria(WithMaxFocalLength(24)), []string{"a", "c"}},
		{"upper bound is inclusive", NewCriteria(WithMaxFocalLength(14)), []string{"c"}},
		{"lower bound is inclusive", NewCriteria(WithMinFocalLength(400)), []string{"d"}},
		{"window beyond every lens", NewCriteria(WithFocalLength(500, 600)), []string{}},
		{"inverted window matches nothing", NewCriteria(WithFocalLength(60, 40)), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(lenses, tt.criteria)))
		})
	}
}

func TestFocalLengthIsOverlapNotContainment(t *testing.T) {
	zoom := []catalogs.Lens{{ID: "z", FocalRange: catalogs.FocalRange{Min: 24, Max: 70}, MaxAperture: 2.8}}

	// The zoom is not contained in 40-60 but overlaps it.
	assert.Len(t, Apply(zoom, NewCriteria(WithFocalLength(40, 60))), 1)
	// Overlapping on a single point still matches.
	assert.Len(t, Apply(zoom, NewCriteria(WithFocalLength(70, 200))), 1)
	assert.Empty(t, Apply(zoom, NewCriteria(WithFocalLength(71, 200))))
}

func TestApertureRange(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"fast glass", NewCriteria(WithMaxAperture(2)), []string{"b", "e"}},
		{"inclusive upper", NewCriteria(WithMaxAperture(2.8)), []string{"a", "b", "c", "e"}},
		{"inclusive lower", NewCriteria(WithMinAperture(4.5)), []string{"d"}},
		{"window", NewCriteria(WithAperture(1.8, 2.8)), []string{"a", "c", "e"}},
		{"inverted", NewCriteria(WithAperture(4, 2)), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(lenses, tt.criteria)))
		})
	}
}

func TestSearchCombinesWithOtherCriteria(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	// "prime" matches b by description and c by name.
	assert.Equal(t, []string{"b", "c"}, ids(Search(lenses, "prime")))

	// The rentable gate still applies alongside the search.
	got := Apply(lenses, NewCriteria(WithSearch("prime"), OnlyRentable()))
	assert.Equal(t, []string{"c"}, ids(got))
}

func TestSearch(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query matches all", "", []string{"a", "b", "c", "d", "e"}},
		{"name", "long zoom", []string{"d"}},
		{"case insensitive", "WILDLIFE", []string{"d"}},
		{"single letter", "z", []string{"a", "d"}},
		{"description", "anamorphic", []string{"e"}},
		{"trimmed", "  fifty  ", []string{"b"}},
		{"no match", "fisheye", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Search(lenses, tt.query)))
		})
	}
}

func TestConjunctionProperty(t *testing.T) {
	lenses := catalogs.TestLenses(t)

	single := []Option{
		WithManufacturer("X"),
		WithManufacturer("Y"),
		WithFormat("super35"),
		WithFormat("full-frame"),
		WithCategory(catalogs.CategoryStandard),
		WithSearch("zoom"),
		WithFocalLength(40, 90),
		WithMaxAperture(2.8),
		WithMinAperture(2),
		OnlyRentable(),
	}

	for i, a := range single {
		for j, b := range single {
			sa := Apply(lenses, NewCriteria(a))
			sb := Apply(lenses, NewCriteria(b))
			union := Apply(lenses, NewCriteria(a, b))

			// Two options on the same field override each other, so only
			// compare distinct fields.
			ca, cb := NewCriteria(a), NewCriteria(b)
			if sameField(ca, cb) && i != j {
				continue
			}
			assert.Equal(t, intersect(ids(sa), ids(sb)), ids(union), "options %d and %d", i, j)
		}
	}
}

func sameField(a, b Criteria) bool {
	return (a.Manufacturer != "" && b.Manufacturer != "") ||
		(a.Format != "" && b.Format != "") ||
		(a.Category != "" && b.Category != "") ||
		(a.SearchQuery != "" && b.SearchQuery != "") ||
		((a.MinFocalLength != nil || a.MaxFocalLength != nil) && (b.MinFocalLength != nil || b.MaxFocalLength != nil)) ||
		((a.MinAperture != nil || a.MaxAperture != nil) && (b.MinAperture != nil || b.MaxAperture != nil)) ||
		(a.OnlyRentable && b.OnlyRentable)
}

func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}
	out := []string{}
	for _, id := range a {
		if inB[id] {
			out = append(out, id)
		}
	}
	return out
}

func TestCriteriaString(t *testing.T) {
	assert.Equal(t, "all", Criteria{}.String())

	c := NewCriteria(
		WithManufacturer("X"),
		WithSearch("zoom"),
		WithMinFocalLength(24),
		WithAperture(1.4, 2.8),
		OnlyRentable(),
	)
	assert.Equal(t, `manufacturer=X search="zoom" focal=24..* aperture=1.4..2.8 rentable`, c.String())
	assert.False(t, c.IsEmpty())
}

func TestCriteriaApplyMethod(t *testing.T) {
	lenses := catalogs.TestLenses(t)
	c := NewCriteria(WithCategory(catalogs.CategoryUltraWide))
	assert.Equal(t, Apply(lenses, c), c.Apply(lenses))
}
