package board

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/galton/internal/application/sim"
	"github.com/younwookim/galton/internal/application/state"
	"github.com/younwookim/galton/internal/application/system"
	"github.com/younwookim/galton/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func newTestBoard(t *testing.T, mutate func(c *config.BoardConfig)) *Board {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	s, err := sim.New(cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return New(s)
}

func TestNew(t *testing.T) {
	b := newTestBoard(t, func(c *config.BoardConfig) {
		c.Debug.ShowWalls = false
		c.Debug.ShowGrid = true
	})

	assert.Equal(t, state.StateRunning, b.State())
	assert.False(t, b.ShowWalls())
	assert.True(t, b.ShowGrid())
}

func TestBoard_Apply(t *testing.T) {
	tests := []struct {
		name  string
		cmd   system.Command
		check func(t *testing.T, b *Board)
	}{
		{"pause", system.CmdTogglePause, func(t *testing.T, b *Board) {
			assert.Equal(t, state.StatePaused, b.State())
		}},
		{"walls", system.CmdToggleWalls, func(t *testing.T, b *Board) {
			assert.False(t, b.ShowWalls())
		}},
		{"grid", system.CmdToggleGrid, func(t *testing.T, b *Board) {
			assert.False(t, b.ShowGrid())
		}},
		{"none", system.CmdNone, func(t *testing.T, b *Board) {
			assert.Equal(t, state.StateRunning, b.State())
			assert.True(t, b.ShowWalls())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, nil)
			require.NoError(t, b.Apply(tt.cmd))
			tt.check(t, b)
		})
	}
}

func TestBoard_QuitTerminates(t *testing.T) {
	b := newTestBoard(t, nil)
	assert.ErrorIs(t, b.Apply(system.CmdQuit), ebiten.Termination)
}

func TestBoard_PausedDoesNotStep(t *testing.T) {
	b := newTestBoard(t, nil)
	require.NoError(t, b.advance(testDT))
	require.NoError(t, b.Apply(system.CmdTogglePause))

	for i := 0; i < 10; i++ {
		require.NoError(t, b.advance(testDT))
	}
	assert.Equal(t, 1, b.sim.Stats().Frame)

	require.NoError(t, b.Apply(system.CmdTogglePause))
	require.NoError(t, b.advance(testDT))
	assert.Equal(t, 2, b.sim.Stats().Frame)
}

func TestBoard_Reset(t *testing.T) {
	b := newTestBoard(t, nil)
	for i := 0; i < 30; i++ {
		require.NoError(t, b.advance(testDT))
	}
	require.NoError(t, b.Apply(system.CmdTogglePause))

	require.NoError(t, b.Apply(system.CmdReset))

	assert.Equal(t, state.StateRunning, b.State())
	assert.Equal(t, 0, b.sim.Stats().Frame)
	assert.Equal(t, 100, b.sim.NumBalls())
}

func TestBoard_FinishesWhenAllBallsLeave(t *testing.T) {
	b := newTestBoard(t, func(c *config.BoardConfig) {
		c.Spawn.NumBalls = 20
	})

	for i := 0; i < 5000 && b.State() == state.StateRunning; i++ {
		require.NoError(t, b.advance(testDT))
	}

	require.Equal(t, state.StateFinished, b.State())
	assert.Equal(t, 20, b.sim.Tally().Total())

	frame := b.sim.Stats().Frame
	require.NoError(t, b.advance(testDT))
	assert.Equal(t, frame, b.sim.Stats().Frame, "finished board is not stepped")

	// Pause does not resurrect a finished run
	require.NoError(t, b.Apply(system.CmdTogglePause))
	assert.Equal(t, state.StateFinished, b.State())
}

func TestBoard_InvalidTimeStep(t *testing.T) {
	b := newTestBoard(t, nil)
	assert.ErrorIs(t, b.advance(-1), sim.ErrInvalidTimeStep)
}
