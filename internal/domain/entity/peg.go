package entity

import "github.com/younwookim/galton/internal/domain/geom"

// Peg is a fixed obstacle. Its fields are unexported and it has no
// setters, so a peg cannot move once created.
type Peg struct {
	pos    geom.Vec2
	radius float64
}

// NewPeg creates a peg at (x, y).
func NewPeg(x, y, radius float64) Peg {
	return Peg{pos: geom.V(x, y), radius: radius}
}

func (p Peg) Position() geom.Vec2 { return p.pos }

func (p Peg) Radius() float64 { return p.radius }

func (p Peg) X() float64 { return p.pos.X }

func (p Peg) Y() float64 { return p.pos.Y }
