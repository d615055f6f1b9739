// Package table converts catalog records into rows for table output.
package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/lensmap/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// Marker is the cell value for a set membership column.
const Marker = "*"

// Marks reports per-lens membership flags shown alongside lens rows.
type Marks struct {
	Favorite  func(id string) bool
	Comparing func(id string) bool
}

// LensesToTableData converts lenses to table format. Wide output adds the
// focal category and description.
func LensesToTableData(lenses []catalogs.Lens, wide bool, marks Marks) Data {
	headers := []string{"id", "name", "manufacturer", "focal", "aperture", "mount", "formats", "rentable"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft, AlignCenter}
	if wide {
		headers = append(headers, "category", "description")
		align = append(align, AlignLeft, AlignLeft)
	}
	if marks.Favorite != nil {
		headers = append(headers, "fav")
		align = append(align, AlignCenter)
	}
	if marks.Comparing != nil {
		headers = append(headers, "cmp")
		align = append(align, AlignCenter)
	}

	rows := make([][]string, 0, len(lenses))
	for _, lens := range lenses {
		row := []string{
			lens.ID,
			lens.Name,
			orDash(lens.Manufacturer),
			lens.FocalRange.String(),
			FormatAperture(lens.MaxAperture),
			orDash(lens.Mount),
			FormatFormats(lens.Formats),
			FormatBool(lens.Rentable),
		}
		if wide {
			row = append(row, string(lens.EffectiveCategory()), Truncate(lens.Description, 60))
		}
		if marks.Favorite != nil {
			row = append(row, mark(marks.Favorite(lens.ID)))
		}
		if marks.Comparing != nil {
			row = append(row, mark(marks.Comparing(lens.ID)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// LensDetails converts a single lens to a property/value table.
func LensDetails(lens catalogs.Lens) Data {
	return Data{
		Headers: []string{"property", "value"},
		Rows: [][]string{
			{"ID", lens.ID},
			{"Name", lens.Name},
			{"Manufacturer", orDash(lens.Manufacturer)},
			{"Focal Range", lens.FocalRange.String()},
			{"Category", string(lens.EffectiveCategory())},
			{"Max Aperture", FormatAperture(lens.MaxAperture)},
			{"Mount", orDash(lens.Mount)},
			{"Formats", FormatFormats(lens.Formats)},
			{"Rentable", FormatBool(lens.Rentable)},
			{"Description", orDash(lens.Description)},
		},
	}
}

// CamerasToTableData converts cameras to table format.
func CamerasToTableData(cameras []catalogs.Camera) Data {
	rows := make([][]string, 0, len(cameras))
	for _, camera := range cameras {
		rows = append(rows, []string{
			camera.ID,
			camera.Name,
			orDash(camera.Manufacturer),
			orDash(camera.Mount),
			FormatFormats(camera.Formats),
		})
	}
	return Data{
		Headers: []string{"id", "name", "manufacturer", "mount", "formats"},
		Rows:    rows,
	}
}

// RentalsToTableData converts rentals to table format.
func RentalsToTableData(rentals []catalogs.Rental) Data {
	rows := make([][]string, 0, len(rentals))
	for _, rental := range rentals {
		rows = append(rows, []string{
			rental.ID,
			rental.Name,
			FormatDate(rental.StartsAt.Time),
			FormatDate(rental.EndsAt.Time),
			strconv.Itoa(len(rental.LensIDs)),
			strconv.Itoa(len(rental.CameraIDs)),
		})
	}
	return Data{
		Headers:         []string{"id", "name", "starts", "ends", "lenses", "cameras"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight},
	}
}

// FormatsToTableData converts recording formats to table format.
func FormatsToTableData(formats []catalogs.RecordingFormat) Data {
	rows := make([][]string, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, []string{
			string(f.ID),
			f.Name,
			strconv.FormatFloat(f.Width, 'f', -1, 64) + " x " + strconv.FormatFloat(f.Height, 'f', -1, 64) + " mm",
		})
	}
	return Data{
		Headers: []string{"id", "name", "sensor"},
		Rows:    rows,
	}
}

// FormatAperture renders an f-number.
func FormatAperture(f float64) string {
	if f <= 0 {
		return "-"
	}
	return "f/" + strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatFormats joins format identifiers.
func FormatFormats(formats []catalogs.FormatID) string {
	if len(formats) == 0 {
		return "-"
	}
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

// FormatBool renders yes or no.
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	runes := []rune(s)
	if len(runes) <= n || n < 4 {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// FormatDate renders a calendar date, or a dash for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.DateOnly)
}

func mark(b bool) string {
	if b {
		return Marker
	}
	return ""
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
