package errors

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the catalog core can report.
type Kind string

// The closed set of failure kinds.
const (
	KindLensNotFound       Kind = "lens_not_found"
	KindCameraNotFound     Kind = "camera_not_found"
	KindRentalNotFound     Kind = "rental_not_found"
	KindNetwork            Kind = "network_error"
	KindDataCorrupted      Kind = "data_corrupted"
	KindMaxComparisonItems Kind = "max_comparison_items_reached"
)

// Kinds returns all failure kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindLensNotFound,
		KindCameraNotFound,
		KindRentalNotFound,
		KindNetwork,
		KindDataCorrupted,
		KindMaxComparisonItems,
	}
}

// KindOf walks the error chain and reports which failure kind it carries.
// The capacity error is checked first so that it stays distinguishable
// even when wrapped together with other errors.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return "", false
	}
	if errors.Is(err, ErrMaxComparisonItemsReached) {
		return KindMaxComparisonItems, true
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		switch nf.Resource {
		case ResourceLens:
			return KindLensNotFound, true
		case ResourceCamera:
			return KindCameraNotFound, true
		case ResourceRental:
			return KindRentalNotFound, true
		}
	}

	switch {
	case errors.Is(err, ErrNetwork):
		return KindNetwork, true
	case errors.Is(err, ErrDataCorrupted):
		return KindDataCorrupted, true
	}
	return "", false
}

// UserMessage renders an error as a short message suitable for end users.
func UserMessage(err error, maxComparison int) string {
	kind, ok := KindOf(err)
	if !ok {
		if err == nil {
			return ""
		}
		return err.Error()
	}

	var nf *NotFoundError
	switch kind {
	case KindMaxComparisonItems:
		return fmt.Sprintf("You can compare at most %d lenses at a time.", maxComparison)
	case KindLensNotFound, KindCameraNotFound, KindRentalNotFound:
		errors.As(err, &nf)
		return fmt.Sprintf("No %s found with ID %q.", nf.Resource, nf.ID)
	case KindNetwork:
		return "The catalog could not be reached. Check your connection and try again."
	default:
		return "The catalog data is damaged and could not be read."
	}
}
