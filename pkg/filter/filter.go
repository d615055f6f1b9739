// Package filter provides the lens query engine: structured criteria that
// narrow a lens list by logical AND, and free-text search.
//
// Filtering is pure and synchronous. It never mutates its input, never
// performs I/O, and always preserves the relative order of the lenses it
// is given.
package filter

import (
	"fmt"
	"strings"

	"github.com/agentstation/lensmap/pkg/catalogs"
)

// Criteria contains every filter criterion for lenses. The zero value
// matches everything. Each non-empty field narrows the result independently.
type Criteria struct {
	// Equality filters
	Format       catalogs.FormatID
	Category     catalogs.FocalCategory
	Manufacturer string

	// Free-text search over name, manufacturer, and description
	SearchQuery string

	// Numeric range filters (inclusive, either bound optional)
	MinFocalLength *float64
	MaxFocalLength *float64
	MinAperture    *float64
	MaxAperture    *float64

	// Availability gate
	OnlyRentable bool
}

// Option configures a Criteria value.
type Option func(*Criteria)

// NewCriteria builds a Criteria from options.
func NewCriteria(opts ...Option) Criteria {
	var c Criteria
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithFormat restricts results to lenses covering the format.
func WithFormat(id catalogs.FormatID) Option {
	return func(c *Criteria) { c.Format = id }
}

// WithCategory restricts results to a focal category.
func WithCategory(category catalogs.FocalCategory) Option {
	return func(c *Criteria) { c.Category = category }
}

// WithManufacturer restricts results to a manufacturer.
func WithManufacturer(name string) Option {
	return func(c *Criteria) { c.Manufacturer = name }
}

// WithSearch adds a free-text search term.
func WithSearch(query string) Option {
	return func(c *Criteria) { c.SearchQuery = query }
}

// WithFocalLength sets an inclusive focal length window. Lenses whose
// range overlaps the window match.
func WithFocalLength(lo, hi float64) Option {
	return func(c *Criteria) {
		c.MinFocalLength = &lo
		c.MaxFocalLength = &hi
	}
}

// WithMinFocalLength sets only the lower focal length bound.
func WithMinFocalLength(mm float64) Option {
	return func(c *Criteria) { c.MinFocalLength = &mm }
}

// WithMaxFocalLength sets only the upper focal length bound.
func WithMaxFocalLength(mm float64) Option {
	return func(c *Criteria) { c.MaxFocalLength = &mm }
}

// WithAperture sets an inclusive maximum aperture window (f-numbers).
func WithAperture(lo, hi float64) Option {
	return func(c *Criteria) {
		c.MinAperture = &lo
		c.MaxAperture = &hi
	}
}

// WithMinAperture sets only the lower aperture bound.
func WithMinAperture(f float64) Option {
	return func(c *Criteria) { c.MinAperture = &f }
}

// WithMaxAperture sets only the upper aperture bound.
func WithMaxAperture(f float64) Option {
	return func(c *Criteria) { c.MaxAperture = &f }
}

// OnlyRentable excludes lenses that cannot be rented.
func OnlyRentable() Option {
	return func(c *Criteria) { c.OnlyRentable = true }
}

// IsEmpty reports whether the criteria impose no constraint at all.
func (c Criteria) IsEmpty() bool {
	return c.Format == "" &&
		c.Category == "" &&
		strings.TrimSpace(c.Manufacturer) == "" &&
		strings.TrimSpace(c.SearchQuery) == "" &&
		c.MinFocalLength == nil &&
		c.MaxFocalLength == nil &&
		c.MinAperture == nil &&
		c.MaxAperture == nil &&
		!c.OnlyRentable
}

// String describes the active criteria, for logs.
func (c Criteria) String() string {
	var parts []string
	if c.Format != "" {
		parts = append(parts, "format="+string(c.Format))
	}
	if c.Category != "" {
		parts = append(parts, "category="+string(c.Category))
	}
	if m := strings.TrimSpace(c.Manufacturer); m != "" {
		parts = append(parts, "manufacturer="+m)
	}
	if q := strings.TrimSpace(c.SearchQuery); q != "" {
		parts = append(parts, fmt.Sprintf("search=%q", q))
	}
	if c.MinFocalLength != nil || c.MaxFocalLength != nil {
		parts = append(parts, "focal="+bounds(c.MinFocalLength, c.MaxFocalLength))
	}
	if c.MinAperture != nil || c.MaxAperture != nil {
		parts = append(parts, "aperture="+bounds(c.MinAperture, c.MaxAperture))
	}
	if c.OnlyRentable {
		parts = append(parts, "rentable")
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " ")
}

func bounds(lo, hi *float64) string {
	l, h := "*", "*"
	if lo != nil {
		l = fmt.Sprintf("%g", *lo)
	}
	if hi != nil {
		h = fmt.Sprintf("%g", *hi)
	}
	return l + ".." + h
}

// Apply returns the lenses matching every active criterion, in input order.
// The result is always a new slice; the input is never modified.
func Apply(lenses []catalogs.Lens, c Criteria) []catalogs.Lens {
	results := make([]catalogs.Lens, 0, len(lenses))
	m := c.matcher()

	for _, lens := range lenses {
		if m.matches(lens) {
			results = append(results, lens)
		}
	}

	return results
}

// Apply is a convenience method for filter.Apply.
func (c Criteria) Apply(lenses []catalogs.Lens) []catalogs.Lens {
	return Apply(lenses, c)
}

// Search returns the lenses whose name, manufacturer, or description
// contain the query, ignoring case. An empty query matches everything.
func Search(lenses []catalogs.Lens, query string) []catalogs.Lens {
	return Apply(lenses, Criteria{SearchQuery: query})
}

// matcher holds the criteria with text fields normalised once per Apply.
type matcher struct {
	Criteria
	search searcher
}

func (c Criteria) matcher() matcher {
	return matcher{
		Criteria: c,
		search:   newSearcher(c.SearchQuery),
	}
}

// matches checks if a lens matches the filter criteria.
func (m matcher) matches(lens catalogs.Lens) bool {
	return m.matchesEqualityFilters(lens) &&
		m.matchesRangeFilters(lens) &&
		m.matchesAvailability(lens) &&
		m.search.matches(lens)
}

// matchesEqualityFilters checks format, category, and manufacturer filters.
func (m matcher) matchesEqualityFilters(lens catalogs.Lens) bool {
	if m.Format != "" && !formatContains(lens.Formats, m.Format) {
		return false
	}
	if m.Category != "" && lens.EffectiveCategory() != m.Category {
		return false
	}
	if manufacturer := strings.TrimSpace(m.Manufacturer); manufacturer != "" &&
		!strings.EqualFold(strings.TrimSpace(lens.Manufacturer), manufacturer) {
		return false
	}
	return true
}

// matchesRangeFilters checks the focal length and aperture windows.
// Focal length matches when the lens range overlaps the window; the
// aperture is a single value and must fall inside its window.
func (m matcher) matchesRangeFilters(lens catalogs.Lens) bool {
	if m.MinFocalLength != nil && lens.FocalRange.Max < *m.MinFocalLength {
		return false
	}
	if m.MaxFocalLength != nil && lens.FocalRange.Min > *m.MaxFocalLength {
		return false
	}
	if m.MinFocalLength != nil && m.MaxFocalLength != nil && *m.MinFocalLength > *m.MaxFocalLength {
		return false
	}
	if m.MinAperture != nil && lens.MaxAperture < *m.MinAperture {
		return false
	}
	if m.MaxAperture != nil && lens.MaxAperture > *m.MaxAperture {
		return false
	}
	return true
}

// matchesAvailability checks the rentable gate.
func (m matcher) matchesAvailability(lens catalogs.Lens) bool {
	return !m.OnlyRentable || lens.Rentable
}

// formatContains checks if the format list contains the wanted format.
func formatContains(formats []catalogs.FormatID, want catalogs.FormatID) bool {
	for _, f := range formats {
		if strings.EqualFold(string(f), string(want)) {
			return true
		}
	}
	return false
}
