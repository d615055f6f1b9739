package catalogs

import (
	"fmt"
	"slices"
)

// Lens represents a lens record in the catalog.
type Lens struct {
	// Core identity
	ID           string `json:"id" yaml:"id"`                                       // Unique lens identifier
	Name         string `json:"name" yaml:"name"`                                   // Display name
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`                   // Lens maker
	Description  string `json:"description,omitempty" yaml:"description,omitempty"` // Free-text description

	// Optics
	FocalRange  FocalRange    `json:"focal_range" yaml:"focal_range"`                 // Focal length range in millimetres
	MaxAperture float64       `json:"max_aperture" yaml:"max_aperture"`               // Widest aperture as an f-number (or T-stop)
	Category    FocalCategory `json:"category,omitempty" yaml:"category,omitempty"`   // Explicit focal category, derived when empty
	Mount       string        `json:"mount,omitempty" yaml:"mount,omitempty"`         // Lens mount (PL, EF, E, ...)
	Formats     []FormatID    `json:"formats,omitempty" yaml:"formats,omitempty"`     // Recording formats the image circle covers

	// Availability
	Rentable bool `json:"rentable" yaml:"rentable"` // Whether the lens can be rented
}

// FocalRange is an inclusive focal length range in millimetres.
// Primes have Min == Max.
type FocalRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// IsPrime reports whether the range describes a fixed focal length.
func (r FocalRange) IsPrime() bool {
	return r.Min == r.Max
}

// Midpoint returns the centre of the range.
func (r FocalRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Overlaps reports whether r shares at least one point with [lo, hi].
func (r FocalRange) Overlaps(lo, hi float64) bool {
	return r.Max >= lo && r.Min <= hi
}

// String renders the range the way lenses are usually labelled.
func (r FocalRange) String() string {
	if r.IsPrime() {
		return fmt.Sprintf("%gmm", r.Min)
	}
	return fmt.Sprintf("%g-%gmm", r.Min, r.Max)
}

// EffectiveCategory returns the lens category, classifying the focal
// range midpoint when no explicit category was recorded.
func (l Lens) EffectiveCategory() FocalCategory {
	if l.Category != "" {
		return l.Category
	}
	return CategorizeFocalLength(l.FocalRange.Midpoint())
}

// SupportsFormat reports whether the lens lists the given format.
func (l Lens) SupportsFormat(id FormatID) bool {
	return slices.Contains(l.Formats, id)
}

// Validate checks the structural integrity of a lens record.
func (l Lens) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lens ID cannot be empty")
	}
	if l.FocalRange.Min <= 0 || l.FocalRange.Max <= 0 {
		return fmt.Errorf("lens %s: focal range must be positive, got %s", l.ID, l.FocalRange)
	}
	if l.FocalRange.Min > l.FocalRange.Max {
		return fmt.Errorf("lens %s: min focal length %g exceeds max %g", l.ID, l.FocalRange.Min, l.FocalRange.Max)
	}
	if l.MaxAperture <= 0 {
		return fmt.Errorf("lens %s: max aperture must be positive, got %g", l.ID, l.MaxAperture)
	}
	if l.Category != "" && !l.Category.IsValid() {
		return fmt.Errorf("lens %s: unknown category %q", l.ID, l.Category)
	}
	return nil
}

// Copy returns a deep copy of the lens.
func (l Lens) Copy() Lens {
	l.Formats = slices.Clone(l.Formats)
	return l
}

// FocalCategory groups lenses by angle of view.
type FocalCategory string

// Focal categories, shortest to longest.
const (
	CategoryUltraWide      FocalCategory = "ultra-wide"
	CategoryWide           FocalCategory = "wide"
	CategoryStandard       FocalCategory = "standard"
	CategoryTelephoto      FocalCategory = "telephoto"
	CategorySuperTelephoto FocalCategory = "super-telephoto"
)

// FocalCategories returns every category in ascending focal order.
func FocalCategories() []FocalCategory {
	return []FocalCategory{
		CategoryUltraWide,
		CategoryWide,
		CategoryStandard,
		CategoryTelephoto,
		CategorySuperTelephoto,
	}
}

// IsValid reports whether c is a known category.
func (c FocalCategory) IsValid() bool {
	return slices.Contains(FocalCategories(), c)
}

// String returns the string representation of a focal category.
func (c FocalCategory) String() string {
	return string(c)
}

// CategorizeFocalLength maps a focal length in millimetres to its category.
func CategorizeFocalLength(mm float64) FocalCategory {
	switch {
	case mm < 24:
		return CategoryUltraWide
	case mm < 35:
		return CategoryWide
	case mm <= 70:
		return CategoryStandard
	case mm <= 200:
		return CategoryTelephoto
	default:
		return CategorySuperTelephoto
	}
}
