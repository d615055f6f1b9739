package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/lensmap/pkg/catalogs"
)

// searcher matches a case-folded query against the searchable lens fields.
type searcher struct {
	query string
	fold  cases.Caser
}

func newSearcher(query string) searcher {
	s := searcher{fold: cases.Fold()}
	if q := strings.TrimSpace(query); q != "" {
		s.query = s.fold.String(q)
	}
	return s
}

// SearchFields returns the lens fields covered by free-text search.
func SearchFields(lens catalogs.Lens) []string {
	return []string{lens.Name, lens.Manufacturer, lens.Description}
}

func (s searcher) matches(lens catalogs.Lens) bool {
	if s.query == "" {
		return true
	}
	for _, field := range SearchFields(lens) {
		if field != "" && strings.Contains(s.fold.String(field), s.query) {
			return true
		}
	}
	return false
}
