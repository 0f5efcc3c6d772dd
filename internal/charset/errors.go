package charset

import (
	"errors"
)

var (
	// ErrEmptyPool is returned if the constructed pool has no members.
	ErrEmptyPool = errors.New("character pool is empty")

	// ErrCharExists is returned if an included character is already in the pool.
	ErrCharExists = errors.New("character already in pool")

	// ErrCharMissing is returned if an excluded character is not in the pool.
	ErrCharMissing = errors.New("character not in pool")

	// ErrBadEntryPrefix is returned if a pool entry does not start with + or -.
	ErrBadEntryPrefix = errors.New("pool entry must start with '+' or '-'")

	// ErrUnknownSetEntry is returned for set letters other than d, l, u, s, m, A.
	ErrUnknownSetEntry = errors.New("unknown pool entry")

	// ErrUnterminatedSet is returned if a custom set is missing its closing bracket.
	ErrUnterminatedSet = errors.New("custom set is missing closing ']'")
)
