package assert

import (
	"fmt"
)

// NonZero panics if value is exactly zero.
func NonZero(value float32, what string) {
	if value == 0 {
		panic(fmt.Sprintf("expected non zero %s", what))
	}
}

// NonZeroExtent panics if the range from a to b has a width of exactly zero.
// The order of a and b is not checked.
func NonZeroExtent(a, b float32, what string) {
	if a-b == 0 {
		panic(fmt.Sprintf("expected %s to span a non zero range, got %v and %v", what, a, b))
	}
}
