package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid board config")

// Validate rejects configurations the simulation cannot run with.
// All problems are reported at once.
func (c *BoardConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Display.ScreenWidth > 0, "display.screenWidth must be positive, got %d", c.Display.ScreenWidth)
	check(c.Display.ScreenHeight > 0, "display.screenHeight must be positive, got %d", c.Display.ScreenHeight)
	check(c.Display.Scale > 0, "display.scale must be positive, got %d", c.Display.Scale)
	check(c.Display.Framerate > 0, "display.framerate must be positive, got %d", c.Display.Framerate)

	check(finitePositive(c.Board.PegRadius), "board.pegRadius must be positive, got %v", c.Board.PegRadius)
	check(finitePositive(c.Board.BallRadius), "board.ballRadius must be positive, got %v", c.Board.BallRadius)
	check(c.Board.PegsInFirstRow >= 1, "board.pegsInFirstRow must be at least 1, got %d", c.Board.PegsInFirstRow)
	check(c.Board.NumRows >= 0, "board.numRows must not be negative, got %d", c.Board.NumRows)
	if finitePositive(c.Board.PegRadius) && finitePositive(c.Board.BallRadius) {
		// Neighbouring slabs must not touch, and a ball pushed off the
		// outer slabs must still fit inside the walls.
		pegWidth := 2 * c.Board.PegRadius
		check(pegWidth < c.Spacing(),
			"board.pegRadius %v too large for spacing %v (slabs overlap)", c.Board.PegRadius, c.Spacing())
		check(pegWidth+Separation <= 5*c.Board.BallRadius,
			"board.pegRadius %v too large for ballRadius %v (outer bins narrower than a ball)", c.Board.PegRadius, c.Board.BallRadius)
	}
	check(finiteNonNegative(c.Board.FirstRowY), "board.firstRowY must not be negative, got %v", c.Board.FirstRowY)

	check(finiteNonNegative(c.Physics.Gravity), "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(finiteNonNegative(c.Physics.WiggleDeg), "physics.wiggleDeg must not be negative, got %v", c.Physics.WiggleDeg)
	check(c.Physics.Elasticity >= 0 && c.Physics.Elasticity <= 1,
		"physics.elasticity must be within [0, 1], got %v", c.Physics.Elasticity)

	check(c.Spawn.NumBalls >= 0, "spawn.numBalls must not be negative, got %d", c.Spawn.NumBalls)
	check(finiteNonNegative(c.Spawn.Jitter), "spawn.jitter must not be negative, got %v", c.Spawn.Jitter)

	if c.Debug.ShowGrid {
		check(finitePositive(c.Debug.GridSpacing), "debug.gridSpacing must be positive, got %v", c.Debug.GridSpacing)
	}
	if c.Audio.Enabled {
		check(finitePositive(c.Audio.Frequency), "audio.frequency must be positive, got %v", c.Audio.Frequency)
		check(c.Audio.DurationMs > 0, "audio.durationMs must be positive, got %d", c.Audio.DurationMs)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

func finiteNonNegative(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}
