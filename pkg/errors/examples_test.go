package errors_test

import (
	"fmt"

	"github.com/agentstation/lensmap/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := errors.NewLensNotFound("zeiss-21")

	if errors.IsNotFound(err) {
		fmt.Println(err)
	}

	// Output: lens with ID zeiss-21 not found
}

// Example_kindOf shows how callers map failures to a specific message.
func Example_kindOf() {
	err := fmt.Errorf("adding lens e: %w", errors.ErrMaxComparisonItemsReached)

	switch kind, _ := errors.KindOf(err); kind {
	case errors.KindMaxComparisonItems:
		fmt.Println("4 items max")
	default:
		fmt.Println("something went wrong")
	}

	// Output: 4 items max
}
