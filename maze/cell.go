package maze

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate. X is the column, Y is the row.
type Cell struct {
	X int `json:"x"` // Column index of the cell
	Y int `json:"y"` // Row index of the cell
}

// Neighbor returns the cell one step away in direction d.
// The result may lie outside the grid.
func (c Cell) Neighbor(d Direction) Cell {
	dx, dy := d.Offset()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// ManhattanDistance returns |c.X-o.X| + |c.Y-o.Y|.
func (c Cell) ManhattanDistance(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// AllDirections lists the directions in the order used for enumeration.
var AllDirections = [4]Direction{North, South, East, West}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Offset returns the unit step (dx, dy) of the direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case North, South, East, West:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("unknown direction %d", uint8(d))
}

// UnmarshalText accepts the direction name, case-insensitively.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses "North", "South", "East" or "West" (any case).
func ParseDirection(s string) (Direction, error) {
	for _, d := range AllDirections {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Directions is a set of directions.
type Directions uint8

// Has reports whether d is in the set.
func (s Directions) Has(d Direction) bool {
	return s&Directions(d) != 0
}

// With returns the set with d added.
func (s Directions) With(d Direction) Directions {
	return s | Directions(d)
}

// Len returns the number of directions in the set.
func (s Directions) Len() int {
	n := 0
	for _, d := range AllDirections {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// List returns the members of the set in North, South, East, West order.
func (s Directions) List() []Direction {
	list := make([]Direction, 0, 4)
	for _, d := range AllDirections {
		if s.Has(d) {
			list = append(list, d)
		}
	}
	return list
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
