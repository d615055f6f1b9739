package catalogs

import (
	"fmt"
	"slices"
)

// Camera represents a camera body in the catalog.
type Camera struct {
	ID           string     `json:"id" yaml:"id"`                               // Unique camera identifier
	Name         string     `json:"name" yaml:"name"`                           // Display name
	Manufacturer string     `json:"manufacturer" yaml:"manufacturer"`           // Camera maker
	Mount        string     `json:"mount,omitempty" yaml:"mount,omitempty"`     // Native lens mount
	Formats      []FormatID `json:"formats,omitempty" yaml:"formats,omitempty"` // Recording formats the camera can shoot
}

// Validate checks the structural integrity of a camera record.
func (c Camera) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("camera ID cannot be empty")
	}
	return nil
}

// Copy returns a deep copy of the camera.
func (c Camera) Copy() Camera {
	c.Formats = slices.Clone(c.Formats)
	return c
}

