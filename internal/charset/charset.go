package charset

import (
	"strings"

	"github.com/pkg/errors"
)

// Set identifies one of the predefined character sets.
type Set int

// Predefined sets in canonical pool order.
const (
	Digits Set = iota
	Lowercase
	Uppercase
	Separators
	MiscSymbols

	// NumSets is the number of predefined sets.
	NumSets
)

var setRunes = [NumSets][]rune{
	Digits:      []rune("0123456789"),
	Lowercase:   []rune("abcdefghijklmnopqrstuvwxyz"),
	Uppercase:   []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	Separators:  []rune("-._"),
	MiscSymbols: []rune("!*&#"),
}

// Pool is the duplicate-free set of characters eligible for random
// selection. Order is stable so the pool supports indexed access.
type Pool struct {
	runes []rune
	index map[rune]int
}

// Build assembles the character pool for a request: enabled predefined sets
// in canonical order, then extra inclusions, then exclusions. It returns
// ErrEmptyPool if nothing is left to sample from.
func Build(req Request) (*Pool, error) {
	p := &Pool{index: make(map[rune]int)}

	for set, runes := range setRunes {
		if !req.Enabled[set] {
			continue
		}
		// Predefined sets are disjoint, no duplicate check needed here.
		for _, r := range runes {
			p.index[r] = len(p.runes)
			p.runes = append(p.runes, r)
		}
	}

	for _, r := range req.Include {
		if err := p.add(r); err != nil {
			return nil, err
		}
	}

	for _, r := range req.Exclude {
		if err := p.remove(r); err != nil {
			return nil, err
		}
	}

	if len(p.runes) == 0 {
		return nil, ErrEmptyPool
	}

	return p, nil
}

func (p *Pool) add(r rune) error {
	if _, ok := p.index[r]; ok {
		return errors.Wrapf(ErrCharExists, "can't add %q, pool is %s", r, p)
	}

	p.index[r] = len(p.runes)
	p.runes = append(p.runes, r)

	return nil
}

func (p *Pool) remove(r rune) error {
	at, ok := p.index[r]
	if !ok {
		return errors.Wrapf(ErrCharMissing, "can't remove %q, pool is %s", r, p)
	}

	p.runes = append(p.runes[:at], p.runes[at+1:]...)
	delete(p.index, r)

	for i := at; i < len(p.runes); i++ {
		p.index[p.runes[i]] = i
	}

	return nil
}

// Contains reports whether r is a member of the pool.
func (p *Pool) Contains(r rune) bool {
	_, ok := p.index[r]

	return ok
}

// Len returns the number of characters in the pool.
func (p *Pool) Len() int {
	return len(p.runes)
}

// Runes returns the pool members in order. The returned slice must not be
// modified.
func (p *Pool) Runes() []rune {
	return p.runes
}

// String renders the pool members for display, e.g. with --show-pool.
func (p *Pool) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, r := range p.runes {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteByte('\'')
		b.WriteRune(r)
		b.WriteByte('\'')
	}

	b.WriteByte(']')

	return b.String()
}
