package lensmap

import (
	"context"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/preferences"
)

// FavoriteLenses returns the favorite lenses in catalog order. Favorites
// that no longer resolve to a catalog lens are skipped.
func (c *Client) FavoriteLenses(ctx context.Context) ([]catalogs.Lens, error) {
	return c.resolve(ctx, c.preferences.Favorites())
}

// ComparisonLenses returns the lenses being compared in catalog order.
func (c *Client) ComparisonLenses(ctx context.Context) ([]catalogs.Lens, error) {
	return c.resolve(ctx, c.preferences.Comparison())
}

func (c *Client) resolve(ctx context.Context, ids preferences.Set) ([]catalogs.Lens, error) {
	result := make([]catalogs.Lens, 0, ids.Len())
	if ids.Len() == 0 {
		return result, nil
	}

	lenses, err := c.provider.Lenses(c.withLogger(ctx))
	if err != nil {
		return nil, err
	}
	for _, lens := range lenses {
		if ids.Has(lens.ID) {
			result = append(result, lens)
		}
	}
	return result, nil
}
