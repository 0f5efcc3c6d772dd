package app

import (
	"errors"

	"github.com/rand-str-gen/rand-str-gen/internal/charset"
)

var (
	// ErrInvalidLength is returned if the length argument is not a positive integer.
	ErrInvalidLength = errors.New("length must be a positive integer")

	// ErrInvalidRepeat is returned if the repeat count is not a positive integer.
	ErrInvalidRepeat = errors.New("repeat count must be a positive integer")

	// ErrMissingLength is returned if no length argument was given.
	ErrMissingLength = errors.New("expected arg: length")

	// ErrInvalidFlag wraps flag parse failures so they count as usage errors.
	ErrInvalidFlag = errors.New("invalid arg")
)

// isUsageError reports whether err was caused by bad arguments rather than
// a failure while generating.
func isUsageError(err error) bool {
	for _, usage := range []error{
		ErrInvalidLength,
		ErrInvalidRepeat,
		ErrMissingLength,
		ErrInvalidFlag,
		charset.ErrBadEntryPrefix,
		charset.ErrUnknownSetEntry,
		charset.ErrUnterminatedSet,
	} {
		if errors.Is(err, usage) {
			return true
		}
	}

	return false
}
