package system

import (
	"math/rand"

	"github.com/younwookim/galton/internal/domain/entity"
	"github.com/younwookim/galton/internal/domain/geom"
	"github.com/younwookim/galton/internal/infrastructure/config"
)

// Separation is the push-out gap used by every collision response.
const Separation = config.Separation

// CollisionKind identifies the obstacle class a ball hit.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionPeg
	CollisionBucket
)

// String returns the string representation of the collision kind
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "None"
	case CollisionPeg:
		return "Peg"
	case CollisionBucket:
		return "Bucket"
	default:
		return "Unknown"
	}
}

// WallSide tells which outer wall clamped a ball, if any.
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

// Collision is the outcome of resolving one ball for one frame.
type Collision struct {
	Kind  CollisionKind
	Index int // peg or slab index, -1 when Kind is CollisionNone
	Wall  WallSide
	Ball  entity.Ball // ball state after the response
}

// Hit reports whether an obstacle (peg or bucket) was hit.
func (c Collision) Hit() bool {
	return c.Kind != CollisionNone
}

// PhysicsSystem integrates ball motion and resolves collisions against a
// fixed board.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	board  *entity.Board
	rng    *rand.Rand
	wiggle float64 // radians
}

// NewPhysicsSystem creates a new physics system.
// rng drives the peg-bounce angular jitter; seed it for reproducible runs.
func NewPhysicsSystem(cfg *config.PhysicsConfig, board *entity.Board, rng *rand.Rand) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		board:  board,
		rng:    rng,
		wiggle: geom.DegToRad(cfg.WiggleDeg),
	}
}

// Board returns the board the system resolves against.
func (s *PhysicsSystem) Board() *entity.Board {
	return s.board
}

// Step advances one ball by dt: integrate, resolve, then test for removal.
// removed is true when the ball has left the bottom of the screen.
func (s *PhysicsSystem) Step(b *entity.Ball, dt float64) (c Collision, removed bool) {
	s.Integrate(b, dt)
	c = s.Resolve(b)

	if b.OutOfBounds(s.board.ScreenH()) {
		b.Advance(entity.PhaseRemoved)
		c.Ball = *b
		return c, true
	}
	return c, false
}

// Integrate applies gravity then moves the ball (semi-implicit Euler).
// There is no sub-stepping; a large dt can carry a ball through a peg.
func (s *PhysicsSystem) Integrate(b *entity.Ball, dt float64) {
	b.ApplyGravity(s.config.Gravity, dt)
	b.Move(dt)
}

// Resolve clamps the ball between the outer walls, then resolves at most
// one obstacle: the first overlapping peg while the ball is in the peg
// zone, otherwise the first overlapping bucket slab.
func (s *PhysicsSystem) Resolve(b *entity.Ball) Collision {
	c := Collision{Kind: CollisionNone, Index: -1}
	c.Wall = s.clampWalls(b)

	if s.board.InPegZone(b.Y) {
		b.Advance(entity.PhasePegZone)
		for i := 0; i < s.board.NumPegs(); i++ {
			peg := s.board.PegAt(i)
			if entity.CirclesOverlap(b, peg) {
				PegBounce(b, peg, s.config.Elasticity, s.jitter())
				c.Kind = CollisionPeg
				c.Index = i
				break
			}
		}
	} else {
		b.Advance(entity.PhaseBucketZone)
		for i := 0; i < s.board.NumSlabs(); i++ {
			slab := s.board.SlabAt(i)
			if entity.SlabOverlap(b, slab) {
				BucketBounce(b, slab, s.config.Elasticity)
				b.Advance(entity.PhaseSettling)
				c.Kind = CollisionBucket
				c.Index = i
				break
			}
		}
	}

	c.Ball = *b
	return c
}

// clampWalls keeps the ball center between the two outer walls.
func (s *PhysicsSystem) clampWalls(b *entity.Ball) WallSide {
	left := s.board.LeftWallX()
	right := s.board.RightWallX()
	e := s.config.Elasticity

	if b.X <= left {
		b.X = left + Separation
		b.VX = -b.VX * e
		return WallLeft
	} else if b.X >= right {
		b.X = right - Separation
		b.VX = -b.VX * e
		return WallRight
	}
	return WallNone
}

// jitter returns a uniform angle in [-wiggle, +wiggle].
func (s *PhysicsSystem) jitter() float64 {
	return (s.rng.Float64()*2 - 1) * s.wiggle
}
