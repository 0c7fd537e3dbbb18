package section

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when a request does not fill every grid slot.
var ErrIncomplete = errors.New("request must fill all four grid positions")

// Ordered returns the sections indexed by position, in drawing order. Every
// position must appear exactly once.
func Ordered(sections []Section) ([4]Section, error) {
	var out [4]Section
	var seen [4]bool
	for _, s := range sections {
		if s.Position < TopLeft || s.Position > BottomRight {
			return out, fmt.Errorf("invalid grid position %d", int(s.Position))
		}
		if seen[s.Position] {
			return out, fmt.Errorf("grid position %s given more than once", s.Position)
		}
		seen[s.Position] = true
		out[s.Position] = s
	}
	for i, ok := range seen {
		if !ok {
			return out, fmt.Errorf("%w: %s missing", ErrIncomplete, Position(i))
		}
	}
	return out, nil
}

// Validate checks that the request can be laid out.
func (r Request) Validate() error {
	_, err := Ordered(r.Sections)
	return err
}
