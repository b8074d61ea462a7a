package system

import (
	"github.com/younwookim/galton/internal/domain/entity"
	"github.com/younwookim/galton/internal/domain/geom"
)

// PegBounce reflects the ball's velocity about the ball-to-peg normal,
// scales it by elasticity, and places the ball just outside the peg.
//
// jitter (radians) perturbs only the placement angle, never the
// reflection, so scatter is random while |v'| = elasticity*|v| holds.
// If the centers coincide the normal defaults to straight down, which
// puts the ball directly above the peg.
func PegBounce(b *entity.Ball, peg entity.Peg, elasticity, jitter float64) {
	d := peg.Position().Sub(b.Position())
	normal := geom.V(0, 1)
	if !d.IsZero() {
		normal = d.Normalize()
	}
	angle := normal.Angle() + jitter

	b.SetVelocity(b.Velocity().Reflect(normal).Scale(elasticity))

	dist := b.R + peg.Radius() + Separation
	b.SetPosition(peg.Position().Sub(geom.FromAngle(angle).Scale(dist)))
}

// BucketBounce reverses and damps horizontal velocity and pushes the ball
// out through the nearer side of the slab. VY is untouched.
func BucketBounce(b *entity.Ball, slab entity.Slab, elasticity float64) {
	b.VX = -b.VX * elasticity

	if b.X-slab.Left <= slab.Right-b.X {
		b.X = slab.Left - b.R - Separation
	} else {
		b.X = slab.Right + b.R + Separation
	}
}
