package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/filter"
)

var emptyCriteria = filter.Criteria{}

// ParseCriteria builds lens criteria from query parameters:
// manufacturer, format, category, q, min_focal, max_focal, min_aperture,
// max_aperture and rentable.
func ParseCriteria(r *http.Request) (filter.Criteria, error) {
	q := r.URL.Query()

	opts := []filter.Option{}
	if v := q.Get("manufacturer"); v != "" {
		opts = append(opts, filter.WithManufacturer(v))
	}
	if v := q.Get("format"); v != "" {
		opts = append(opts, filter.WithFormat(catalogs.FormatID(v)))
	}
	if v := q.Get("q"); v != "" {
		opts = append(opts, filter.WithSearch(v))
	}
	if v := q.Get("category"); v != "" {
		category := catalogs.FocalCategory(strings.ToLower(v))
		if !category.IsValid() {
			return filter.Criteria{}, errors.NewValidationError("category", v, "unknown focal category")
		}
		opts = append(opts, filter.WithCategory(category))
	}

	bounds := []struct {
		param string
		opt   func(float64) filter.Option
	}{
		{"min_focal", filter.WithMinFocalLength},
		{"max_focal", filter.WithMaxFocalLength},
		{"min_aperture", filter.WithMinAperture},
		{"max_aperture", filter.WithMaxAperture},
	}
	for _, b := range bounds {
		v, ok, err := parseFloat(q, b.param)
		if err != nil {
			return filter.Criteria{}, err
		}
		if ok {
			opts = append(opts, b.opt(v))
		}
	}

	if v := q.Get("rentable"); v != "" {
		rentable, err := strconv.ParseBool(v)
		if err != nil {
			return filter.Criteria{}, errors.NewValidationError("rentable", v, "must be a boolean")
		}
		if rentable {
			opts = append(opts, filter.OnlyRentable())
		}
	}

	return filter.NewCriteria(opts...), nil
}

func parseFloat(q url.Values, param string) (float64, bool, error) {
	raw := q.Get(param)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false, errors.NewValidationError(param, raw, "must be a non-negative number")
	}
	return v, true, nil
}
