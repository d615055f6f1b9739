package catalogs

import "context"

// LensReader provides read access to lens records.
type LensReader interface {
	// Lenses returns every lens in catalog order.
	Lenses(ctx context.Context) ([]Lens, error)

	// Lens returns a single lens or a lens not found error.
	Lens(ctx context.Context, id string) (Lens, error)
}

// CameraReader provides read access to camera records and recording formats.
type CameraReader interface {
	// Cameras returns every camera in catalog order.
	Cameras(ctx context.Context) ([]Camera, error)

	// Camera returns a single camera or a camera not found error.
	Camera(ctx context.Context, id string) (Camera, error)

	// RecordingFormats returns every recording format.
	RecordingFormats(ctx context.Context) ([]RecordingFormat, error)
}

// RentalReader provides read access to rental records.
type RentalReader interface {
	// Rentals returns every rental in catalog order.
	Rentals(ctx context.Context) ([]Rental, error)

	// Rental returns a single rental or a rental not found error.
	Rental(ctx context.Context, id string) (Rental, error)
}

// Provider supplies catalog records. Implementations may block on I/O,
// must honour ctx cancellation, and report failures as network or data
// corrupted errors from pkg/errors.
type Provider interface {
	LensReader
	CameraReader
	RentalReader
}
