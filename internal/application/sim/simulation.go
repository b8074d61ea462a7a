// Package sim drives a Galton board run: it owns the active balls, steps
// them through the physics system once per frame and tallies the bins
// they leave through.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/younwookim/galton/internal/application/system"
	"github.com/younwookim/galton/internal/domain/entity"
	"github.com/younwookim/galton/internal/infrastructure/config"
)

// ErrInvalidTimeStep is returned by Step for a negative or NaN dt.
var ErrInvalidTimeStep = errors.New("time step must be a non-negative number")

// Stats are running counters for the current run.
type Stats struct {
	Frame      int
	PegHits    int
	BucketHits int
	WallClamps int
	Removed    int
}

// Simulation owns every active ball. Balls are only handed out as copies.
type Simulation struct {
	config  *config.BoardConfig
	board   *entity.Board
	physics *system.PhysicsSystem
	tally   *system.Tally
	rng     *rand.Rand

	balls []entity.Ball
	stats Stats

	// OnCollision is called after every peg or bucket bounce.
	OnCollision func(c system.Collision)
}

// New validates cfg, builds the board and spawns cfg.Spawn.NumBalls balls.
// rng is used for spawn jitter and peg-bounce jitter.
func New(cfg *config.BoardConfig, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: nil random source")
	}

	board := system.LoadBoard(cfg)
	s := &Simulation{
		config:  cfg,
		board:   board,
		physics: system.NewPhysicsSystem(&cfg.Physics, board, rng),
		tally:   system.NewTally(board.NumBuckets()),
		rng:     rng,
	}
	s.spawn()
	return s, nil
}

func (s *Simulation) spawn() {
	s.balls = system.SpawnBalls(s.config.Spawn.NumBalls, s.board, s.config.Board.BallRadius, s.config.Spawn.Jitter, s.rng)
}

// Reset clears the tally and counters and respawns all balls. The board is
// reused; the random source continues from its current state.
func (s *Simulation) Reset() {
	s.tally.Reset()
	s.stats = Stats{}
	s.spawn()
}

// Step advances every active ball by dt in slice order. A ball that leaves
// the screen is tallied and swapped with the last ball, so each ball is
// visited exactly once but order is not preserved.
func (s *Simulation) Step(dt float64) error {
	if dt < 0 || math.IsNaN(dt) {
		return fmt.Errorf("%w: got %v", ErrInvalidTimeStep, dt)
	}

	i := 0
	for i < len(s.balls) {
		ball := &s.balls[i]
		c, removed := s.physics.Step(ball, dt)
		s.count(c)

		if removed {
			s.tally.Record(s.board.BinIndex(ball.X))
			s.stats.Removed++
			last := len(s.balls) - 1
			s.balls[i] = s.balls[last]
			s.balls = s.balls[:last]
			continue
		}
		i++
	}

	s.stats.Frame++
	return nil
}

func (s *Simulation) count(c system.Collision) {
	if c.Wall != system.WallNone {
		s.stats.WallClamps++
	}
	switch c.Kind {
	case system.CollisionPeg:
		s.stats.PegHits++
	case system.CollisionBucket:
		s.stats.BucketHits++
	default:
		return
	}
	if s.OnCollision != nil {
		s.OnCollision(c)
	}
}

// Balls returns a copy of the active balls.
func (s *Simulation) Balls() []entity.Ball {
	return slices.Clone(s.balls)
}

// NumBalls returns the number of active balls.
func (s *Simulation) NumBalls() int {
	return len(s.balls)
}

// Board returns the immutable board.
func (s *Simulation) Board() *entity.Board {
	return s.board
}

// Tally returns the bin counts so far.
func (s *Simulation) Tally() *system.Tally {
	return s.tally
}

// Stats returns the running counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() *config.BoardConfig {
	return s.config
}

// Done reports whether every ball has left the board.
func (s *Simulation) Done() bool {
	return len(s.balls) == 0
}
