package entity

import "github.com/younwookim/galton/internal/domain/geom"

// Phase tracks where a ball is in its fall.
// Phases only move forward.
type Phase int

const (
	PhaseSpawned Phase = iota
	PhasePegZone
	PhaseBucketZone
	PhaseSettling // bounced off a bucket wall at least once
	PhaseRemoved
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "Spawned"
	case PhasePegZone:
		return "PegZone"
	case PhaseBucketZone:
		return "BucketZone"
	case PhaseSettling:
		return "Settling"
	case PhaseRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Ball is a falling ball. Position and velocity are in pixels and
// pixels per second.
type Ball struct {
	X, Y   float64
	VX, VY float64
	R      float64

	Phase Phase
}

// NewBall creates a ball at rest at (x, y).
func NewBall(x, y, radius float64) Ball {
	return Ball{X: x, Y: y, R: radius}
}

func (b *Ball) Position() geom.Vec2 { return geom.V(b.X, b.Y) }

func (b *Ball) Radius() float64 { return b.R }

// Velocity returns (VX, VY) as a vector.
func (b *Ball) Velocity() geom.Vec2 { return geom.V(b.VX, b.VY) }

// SetVelocity replaces VX and VY.
func (b *Ball) SetVelocity(v geom.Vec2) {
	b.VX = v.X
	b.VY = v.Y
}

// SetPosition replaces X and Y.
func (b *Ball) SetPosition(p geom.Vec2) {
	b.X = p.X
	b.Y = p.Y
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 { return b.Velocity().Len() }

// ApplyGravity accelerates the ball downward.
func (b *Ball) ApplyGravity(gravity, dt float64) {
	b.VY += gravity * dt
}

// Move advances the position by the current velocity.
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// OutOfBounds reports whether the ball is entirely below a screen of the
// given height.
func (b *Ball) OutOfBounds(screenH float64) bool {
	return b.Y >= screenH+b.R
}

// Advance moves the phase forward to p. Earlier phases are ignored.
func (b *Ball) Advance(p Phase) {
	if p > b.Phase {
		b.Phase = p
	}
}
