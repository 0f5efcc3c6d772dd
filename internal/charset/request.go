package charset

import (
	"github.com/pkg/errors"
)

// Request describes the pool to build for one invocation: which predefined
// sets contribute, plus individual characters to add or remove.
type Request struct {
	Enabled [NumSets]bool
	Include []rune
	Exclude []rune
}

// DefaultRequest returns a request with every predefined set enabled and no
// extra inclusions or exclusions.
func DefaultRequest() Request {
	var req Request

	for i := range req.Enabled {
		req.Enabled[i] = true
	}

	return req
}

// ParseEntry applies one pool modifier argument to the request. An entry is
// a '+' or '-' prefix followed by a sequence of set letters (d, l, u, s, m,
// A for all sets) and/or one custom set of literal characters in brackets,
// e.g. "-sm", "+[%$^@]", "-A". Empty entries are ignored.
func (req *Request) ParseEntry(entry string) error {
	if entry == "" {
		return nil
	}

	runes := []rune(entry)

	var state bool

	switch runes[0] {
	case '+':
		state = true
	case '-':
		state = false
	default:
		return errors.Wrapf(ErrBadEntryPrefix, "%q", runes[0])
	}

	for i := 1; i < len(runes); i++ {
		switch runes[i] {
		case 'd':
			req.Enabled[Digits] = state
		case 'l':
			req.Enabled[Lowercase] = state
		case 'u':
			req.Enabled[Uppercase] = state
		case 's':
			req.Enabled[Separators] = state
		case 'm':
			req.Enabled[MiscSymbols] = state
		case 'A':
			for set := range req.Enabled {
				req.Enabled[set] = state
			}
		case '[':
			end := i + 1
			for end < len(runes) && runes[end] != ']' {
				end++
			}

			if end == len(runes) {
				return errors.Wrapf(ErrUnterminatedSet, "%q", entry)
			}

			if state {
				req.Include = append(req.Include, runes[i+1:end]...)
			} else {
				req.Exclude = append(req.Exclude, runes[i+1:end]...)
			}

			i = end
		default:
			return errors.Wrapf(ErrUnknownSetEntry, "%q, can be one of d, l, u, s, m, A or [characters]", runes[i])
		}
	}

	return nil
}
