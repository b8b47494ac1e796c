package robot

import "fmt"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (a Position) Add(b Position) Position { return Position{a.X + b.X, a.Y + b.Y} }
func (a Position) Sub(b Position) Position { return Position{a.X - b.X, a.Y - b.Y} }
func (a Position) String() string          { return fmt.Sprintf("(%d,%d)", a.X, a.Y) }

// SqLen is the squared length; no square root is taken anywhere on the grid.
func (a Position) SqLen() int { return a.X*a.X + a.Y*a.Y }

// Sign returns the unit step (-1, 0, +1 per axis) pointing along a.
func (a Position) Sign() Position { return Position{sign(a.X), sign(a.Y)} }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
