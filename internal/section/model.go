package section

import (
	"fmt"
	"strings"
)

// Position names one of the four grid slots.
type Position int

const (
	TopLeft Position = iota
	TopRight
	BottomLeft
	BottomRight
)

// Positions lists the grid slots in drawing order.
var Positions = [4]Position{TopLeft, TopRight, BottomLeft, BottomRight}

var positionNames = [4]string{"top_left", "top_right", "bottom_left", "bottom_right"}

func (p Position) String() string {
	if p < TopLeft || p > BottomRight {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// Column is 0 for the left column and 1 for the right one.
func (p Position) Column() int { return int(p) % 2 }

// Row is 0 for the top row and 1 for the bottom one.
func (p Position) Row() int { return int(p) / 2 }

// ParsePosition accepts the snake_case names, case-insensitively, with
// dashes allowed in place of underscores.
func ParsePosition(s string) (Position, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown grid position %q", s)
}

func (p Position) MarshalText() ([]byte, error) {
	if p < TopLeft || p > BottomRight {
		return nil, fmt.Errorf("invalid grid position %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Section is one grid cell: a caption and the image shown under it.
type Section struct {
	Position Position `json:"position"`
	Caption  string   `json:"caption"`
	Image    string   `json:"image"`
}

// Request is everything one composition needs.
type Request struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	// Output is an explicit output file path. Empty means auto-numbered.
	Output string `json:"output,omitempty"`
	// FooterQR, when set, is encoded as a QR code below the grid.
	FooterQR string `json:"footer_qr,omitempty"`
}
