package sampler

import (
	"errors"
)

var (
	// ErrEmptyPool is returned if the pool has no characters to draw from.
	ErrEmptyPool = errors.New("sampler: pool has no characters")

	// ErrNonPositiveLength is returned for a requested length below 1.
	ErrNonPositiveLength = errors.New("sampler: length must be positive")
)
