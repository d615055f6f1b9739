package catalogs

import (
	"errors"
	"fmt"
)

// Snapshot is a complete, immutable view of the catalog as loaded from a
// source. It is the unit providers decode and validate.
type Snapshot struct {
	Lenses  []Lens            `json:"lenses" yaml:"lenses"`
	Cameras []Camera          `json:"cameras,omitempty" yaml:"cameras,omitempty"`
	Formats []RecordingFormat `json:"formats,omitempty" yaml:"formats,omitempty"`
	Rentals []Rental          `json:"rentals,omitempty" yaml:"rentals,omitempty"`
}

// Validate checks every record and rejects duplicate identifiers. All
// problems are reported together.
func (s Snapshot) Validate() error {
	var errs []error
	for i, l := range s.Lenses {
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("lenses[%d]: %w", i, err))
		}
	}
	for i, c := range s.Cameras {
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("cameras[%d]: %w", i, err))
		}
	}
	for i, f := range s.Formats {
		if err := f.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("formats[%d]: %w", i, err))
		}
	}
	for i, r := range s.Rentals {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rentals[%d]: %w", i, err))
		}
	}

	errs = appendDuplicates(errs, "lens", s.Lenses, func(l Lens) string { return l.ID })
	errs = appendDuplicates(errs, "camera", s.Cameras, func(c Camera) string { return c.ID })
	errs = appendDuplicates(errs, "format", s.Formats, func(f RecordingFormat) string { return string(f.ID) })
	errs = appendDuplicates(errs, "rental", s.Rentals, func(r Rental) string { return r.ID })

	return errors.Join(errs...)
}

// Copy returns a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	out := Snapshot{
		Lenses:  make([]Lens, len(s.Lenses)),
		Cameras: make([]Camera, len(s.Cameras)),
		Formats: append([]RecordingFormat(nil), s.Formats...),
		Rentals: make([]Rental, len(s.Rentals)),
	}
	for i, l := range s.Lenses {
		out.Lenses[i] = l.Copy()
	}
	for i, c := range s.Cameras {
		out.Cameras[i] = c.Copy()
	}
	for i, r := range s.Rentals {
		out.Rentals[i] = r.Copy()
	}
	return out
}

func appendDuplicates[T Record](errs []error, kind string, items []T, idOf func(T) string) []error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := idOf(item)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("duplicate %s ID %s", kind, id))
			continue
		}
		seen[id] = struct{}{}
	}
	return errs
}
