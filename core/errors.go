package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a constructor or setter is given a
	// value outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when an arm index does not address one of the k arms.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ValidateK checks that k can be used as a number of arms.
func ValidateK(k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: k must be an integer greater than 0, got %d", ErrInvalidArgument, k)
	}
	return nil
}

// ResolveIndex maps index onto [0, k). Negative indices count from the end,
// so -1 addresses the last arm.
func ResolveIndex(k, index int) (int, error) {
	resolved := index
	if resolved < 0 {
		resolved += k
	}
	if resolved < 0 || resolved >= k {
		return 0, fmt.Errorf("%w: index %d with %d arms", ErrIndexOutOfRange, index, k)
	}
	return resolved, nil
}
