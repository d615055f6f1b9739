package catalogs

import (
	"fmt"
	"slices"

	"github.com/agentstation/utc"
)

// Rental represents a rental package that bundles lenses and cameras.
// The lens and camera relation is held by reference, never embedded.
type Rental struct {
	ID        string   `json:"id" yaml:"id"`                                     // Unique rental identifier
	Name      string   `json:"name" yaml:"name"`                                 // Display name
	LensIDs   []string `json:"lens_ids,omitempty" yaml:"lens_ids,omitempty"`     // Referenced lens identifiers
	CameraIDs []string `json:"camera_ids,omitempty" yaml:"camera_ids,omitempty"` // Referenced camera identifiers

	StartsAt utc.Time `json:"starts_at" yaml:"starts_at"` // Start of the rental period
	EndsAt   utc.Time `json:"ends_at" yaml:"ends_at"`     // End of the rental period
}

// HasLens reports whether the rental references the given lens.
func (r Rental) HasLens(id string) bool {
	return slices.Contains(r.LensIDs, id)
}

// HasCamera reports whether the rental references the given camera.
func (r Rental) HasCamera(id string) bool {
	return slices.Contains(r.CameraIDs, id)
}

// Validate checks the structural integrity of a rental record.
func (r Rental) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rental ID cannot be empty")
	}
	if !r.StartsAt.IsZero() && !r.EndsAt.IsZero() && r.EndsAt.Time.Before(r.StartsAt.Time) {
		return fmt.Errorf("rental %s: ends before it starts", r.ID)
	}
	return nil
}

// Copy returns a deep copy of the rental.
func (r Rental) Copy() Rental {
	r.LensIDs = slices.Clone(r.LensIDs)
	r.CameraIDs = slices.Clone(r.CameraIDs)
	return r
}
