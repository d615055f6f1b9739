package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/filter"
)

func TestParseCriteria(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		c, err := ParseCriteria(httptest.NewRequest("GET", "/v1/lenses", nil))
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("every parameter", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/lenses?manufacturer=Zeiss&format=super35&category=Telephoto"+
			"&q=anamorphic&min_focal=24&max_focal=70&min_aperture=1.4&max_aperture=2.8&rentable=true", nil)
		c, err := ParseCriteria(r)
		require.NoError(t, err)

		want := filter.NewCriteria(
			filter.WithManufacturer("Zeiss"),
			filter.WithFormat("super35"),
			filter.WithCategory(catalogs.CategoryTelephoto),
			filter.WithSearch("anamorphic"),
			filter.WithFocalLength(24, 70),
			filter.WithAperture(1.4, 2.8),
			filter.OnlyRentable(),
		)
		assert.Equal(t, want, c)
	})

	t.Run("rentable false is no constraint", func(t *testing.T) {
		c, err := ParseCriteria(httptest.NewRequest("GET", "/v1/lenses?rentable=false", nil))
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	for _, query := range []string{
		"min_focal=abc",
		"max_aperture=-1",
		"category=fisheye",
		"rentable=sometimes",
	} {
		t.Run("invalid "+query, func(t *testing.T) {
			_, err := ParseCriteria(httptest.NewRequest("GET", "/v1/lenses?"+query, nil))
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
