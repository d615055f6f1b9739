// Package relations resolves the many-to-many associations between rentals
// and the lenses and cameras they reference. Rentals hold their relations as
// sets of identifiers; resolving is a set-membership join over collections
// that have already been fetched, so nothing here performs I/O.
package relations

import (
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
)

// LensesForRental returns the lenses referenced by the rental, in the order
// they appear in lenses. References to lenses missing from the collection
// are skipped. A rental without lenses yields an empty, non-nil slice.
func LensesForRental(rentalID string, lenses []catalogs.Lens, rentals []catalogs.Rental) ([]catalogs.Lens, error) {
	rental, ok := findRental(rentalID, rentals)
	if !ok {
		return nil, errors.NewRentalNotFound(rentalID)
	}

	refs := idSet(rental.LensIDs)
	result := make([]catalogs.Lens, 0, len(refs))
	for _, lens := range lenses {
		if _, ok := refs[lens.ID]; ok {
			result = append(result, lens)
		}
	}
	return result, nil
}

// RentalsForLens returns the rentals referencing the lens, in the order they
// appear in rentals. The lens must exist in lenses.
func RentalsForLens(lensID string, lenses []catalogs.Lens, rentals []catalogs.Rental) ([]catalogs.Rental, error) {
	if !containsLens(lensID, lenses) {
		return nil, errors.NewLensNotFound(lensID)
	}

	result := make([]catalogs.Rental, 0)
	for _, rental := range rentals {
		if rental.HasLens(lensID) {
			result = append(result, rental)
		}
	}
	return result, nil
}

// CamerasForRental returns the cameras referenced by the rental, in the
// order they appear in cameras.
func CamerasForRental(rentalID string, cameras []catalogs.Camera, rentals []catalogs.Rental) ([]catalogs.Camera, error) {
	rental, ok := findRental(rentalID, rentals)
	if !ok {
		return nil, errors.NewRentalNotFound(rentalID)
	}

	refs := idSet(rental.CameraIDs)
	result := make([]catalogs.Camera, 0, len(refs))
	for _, camera := range cameras {
		if _, ok := refs[camera.ID]; ok {
			result = append(result, camera)
		}
	}
	return result, nil
}

// Index precomputes the lens to rental association for repeated lookups
// over the same collections.
type Index struct {
	lenses  map[string]catalogs.Lens
	rentals map[string]catalogs.Rental
	byLens  map[string][]string
	lensSeq []string
	rentSeq []string
}

// NewIndex builds an index over the given collections.
func NewIndex(lenses []catalogs.Lens, rentals []catalogs.Rental) *Index {
	idx := &Index{
		lenses:  make(map[string]catalogs.Lens, len(lenses)),
		rentals: make(map[string]catalogs.Rental, len(rentals)),
		byLens:  make(map[string][]string),
	}
	for _, lens := range lenses {
		if _, dup := idx.lenses[lens.ID]; !dup {
			idx.lensSeq = append(idx.lensSeq, lens.ID)
		}
		idx.lenses[lens.ID] = lens
	}
	for _, rental := range rentals {
		if _, dup := idx.rentals[rental.ID]; dup {
			continue
		}
		idx.rentals[rental.ID] = rental
		idx.rentSeq = append(idx.rentSeq, rental.ID)
		for id := range idSet(rental.LensIDs) {
			idx.byLens[id] = append(idx.byLens[id], rental.ID)
		}
	}
	return idx
}

// LensesForRental is the indexed equivalent of the package function.
func (idx *Index) LensesForRental(rentalID string) ([]catalogs.Lens, error) {
	rental, ok := idx.rentals[rentalID]
	if !ok {
		return nil, errors.NewRentalNotFound(rentalID)
	}
	refs := idSet(rental.LensIDs)
	result := make([]catalogs.Lens, 0, len(refs))
	for _, id := range idx.lensSeq {
		if _, ok := refs[id]; ok {
			result = append(result, idx.lenses[id])
		}
	}
	return result, nil
}

// RentalsForLens is the indexed equivalent of the package function.
func (idx *Index) RentalsForLens(lensID string) ([]catalogs.Rental, error) {
	if _, ok := idx.lenses[lensID]; !ok {
		return nil, errors.NewLensNotFound(lensID)
	}
	refs := idSet(idx.byLens[lensID])
	result := make([]catalogs.Rental, 0, len(refs))
	for _, id := range idx.rentSeq {
		if _, ok := refs[id]; ok {
			result = append(result, idx.rentals[id])
		}
	}
	return result, nil
}

func findRental(id string, rentals []catalogs.Rental) (catalogs.Rental, bool) {
	for _, rental := range rentals {
		if rental.ID == id {
			return rental, true
		}
	}
	return catalogs.Rental{}, false
}

func containsLens(id string, lenses []catalogs.Lens) bool {
	for _, lens := range lenses {
		if lens.ID == id {
			return true
		}
	}
	return false
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
