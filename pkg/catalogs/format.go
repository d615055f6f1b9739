package catalogs

import "fmt"

// FormatID identifies a recording format.
type FormatID string

// String returns the string representation of a format ID.
func (id FormatID) String() string {
	return string(id)
}

// RecordingFormat describes a sensor/recording area.
type RecordingFormat struct {
	ID     FormatID `json:"id" yaml:"id"`                             // Unique format identifier (e.g. "super35")
	Name   string   `json:"name" yaml:"name"`                         // Display name
	Width  float64  `json:"width,omitempty" yaml:"width,omitempty"`   // Image area width in millimetres
	Height float64  `json:"height,omitempty" yaml:"height,omitempty"` // Image area height in millimetres
}

// Validate checks the structural integrity of a recording format.
func (f RecordingFormat) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("recording format ID cannot be empty")
	}
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("recording format %s: dimensions cannot be negative", f.ID)
	}
	return nil
}
