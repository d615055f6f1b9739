package output

import (
	"io"

	"github.com/agentstation/lensmap/internal/cmd/table"
	"github.com/agentstation/lensmap/pkg/catalogs"
)

// Lenses writes lenses in the given format. Table formats include the
// membership columns described by marks.
func Lenses(w io.Writer, format Format, lenses []catalogs.Lens, marks table.Marks) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.LensesToTableData(lenses, format == FormatWide, marks))
	}
	return NewFormatter(format).Format(w, lenses)
}

// Lens writes a single lens.
func Lens(w io.Writer, format Format, lens catalogs.Lens) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.LensDetails(lens))
	}
	return NewFormatter(format).Format(w, lens)
}

// Rentals writes rentals in the given format.
func Rentals(w io.Writer, format Format, rentals []catalogs.Rental) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.RentalsToTableData(rentals))
	}
	return NewFormatter(format).Format(w, rentals)
}

// Cameras writes cameras in the given format.
func Cameras(w io.Writer, format Format, cameras []catalogs.Camera) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.CamerasToTableData(cameras))
	}
	return NewFormatter(format).Format(w, cameras)
}

// RecordingFormats writes recording formats in the given format.
func RecordingFormats(w io.Writer, format Format, formats []catalogs.RecordingFormat) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.FormatsToTableData(formats))
	}
	return NewFormatter(format).Format(w, formats)
}
