package catalogs

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
)

// TestLens creates a test lens with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestLens(t testing.TB) Lens {
	t.Helper()
	return Lens{
		ID:           "test-lens",
		Name:         "Test 24-70mm",
		Manufacturer: "Test Optics",
		Description:  "A test zoom for unit tests",
		FocalRange:   FocalRange{Min: 24, Max: 70},
		MaxAperture:  2.8,
		Mount:        "PL",
		Formats:      []FormatID{"super35"},
		Rentable:     true,
	}
}

// TestCamera creates a test camera with sensible defaults.
func TestCamera(t testing.TB) Camera {
	t.Helper()
	return Camera{
		ID:           "test-camera",
		Name:         "Test Cam",
		Manufacturer: "Test Optics",
		Mount:        "PL",
		Formats:      []FormatID{"super35"},
	}
}

// TestRental creates a test rental referencing the given lenses.
func TestRental(t testing.TB, id string, lensIDs ...string) Rental {
	t.Helper()
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return Rental{
		ID:       id,
		Name:     "Rental " + id,
		LensIDs:  lensIDs,
		StartsAt: utc.Time{Time: start},
		EndsAt:   utc.Time{Time: start.Add(72 * time.Hour)},
	}
}

// TestLenses returns a small, varied lens catalog. The first two entries
// are the canonical "a" and "b" lenses used across the test suites.
func TestLenses(t testing.TB) []Lens {
	t.Helper()
	return []Lens{
		{
			ID: "a", Name: "Standard Zoom", Manufacturer: "X",
			Description: "Workhorse zoom",
			FocalRange:  FocalRange{Min: 24, Max: 70}, MaxAperture: 2.8,
			Formats: []FormatID{"full-frame", "super35"}, Rentable: true,
		},
		{
			ID: "b", Name: "Fast Fifty", Manufacturer: "Y",
			Description: "Low light prime",
			FocalRange:  FocalRange{Min: 50, Max: 50}, MaxAperture: 1.4,
			Formats: []FormatID{"full-frame"}, Rentable: false,
		},
		{
			ID: "c", Name: "Wide Prime", Manufacturer: "X",
			Description: "Architectural prime with low distortion",
			FocalRange:  FocalRange{Min: 14, Max: 14}, MaxAperture: 2.8,
			Formats: []FormatID{"full-frame"}, Rentable: true,
		},
		{
			ID: "d", Name: "Long Zoom", Manufacturer: "Z",
			Description: "Wildlife and sports telephoto",
			FocalRange:  FocalRange{Min: 100, Max: 400}, MaxAperture: 4.5,
			Formats: []FormatID{"super35"}, Rentable: true,
		},
		{
			ID: "e", Name: "Cine Portrait", Manufacturer: "Y",
			Description: "Anamorphic look for close-ups",
			FocalRange:  FocalRange{Min: 85, Max: 85}, MaxAperture: 1.8,
			Category: CategoryTelephoto,
			Formats:  []FormatID{"super35"}, Rentable: true,
		},
	}
}
