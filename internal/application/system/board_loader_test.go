package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/galton/internal/infrastructure/config"
)

func TestLoadBoard(t *testing.T) {
	t.Run("default board", func(t *testing.T) {
		board := LoadBoard(config.Default())

		require.NotNil(t, board)
		assert.Equal(t, 110, board.NumPegs(), "11 rows of 5..15 pegs")
		assert.Equal(t, 16, board.NumBuckets())
		assert.Equal(t, 15, board.NumSlabs())
		assert.Equal(t, 400.0, board.LastRowY())
		assert.Equal(t, 63.0, board.LeftWallX())
		assert.Equal(t, 537.0, board.RightWallX())
	})

	t.Run("row layout", func(t *testing.T) {
		board := LoadBoard(config.Default())
		pegs := board.Pegs()

		// row 0: 5 pegs from 240 to 360 at y=100
		for i := 0; i < 5; i++ {
			assert.Equal(t, 240.0+float64(i)*30, pegs[i].X())
			assert.Equal(t, 100.0, pegs[i].Y())
			assert.Equal(t, 3.0, pegs[i].Radius())
		}
		// row 1: 6 pegs from 225 at y=130
		assert.Equal(t, 225.0, pegs[5].X())
		assert.Equal(t, 130.0, pegs[5].Y())
		assert.Equal(t, 375.0, pegs[10].X())

		// last row: 15 pegs from 90 to 510 at y=400
		last := pegs[len(pegs)-15:]
		assert.Equal(t, 90.0, last[0].X())
		assert.Equal(t, 510.0, last[14].X())
		for _, p := range last {
			assert.Equal(t, 400.0, p.Y())
		}
	})

	t.Run("slabs are contiguous, ordered and non-overlapping", func(t *testing.T) {
		board := LoadBoard(config.Default())
		slabs := board.Slabs()

		for i, s := range slabs {
			assert.Equal(t, 90.0+float64(i)*30, s.CenterX())
			assert.Equal(t, 6.0, s.Width())
			assert.Equal(t, 400.0, s.Top)
			assert.Equal(t, 600.0, s.Bottom)
			if i > 0 {
				assert.Greater(t, s.Left, slabs[i-1].Right)
			}
		}
		assert.Less(t, board.LeftWallX(), slabs[0].Left)
		assert.Greater(t, board.RightWallX(), slabs[len(slabs)-1].Right)
	})

	t.Run("walls span full height", func(t *testing.T) {
		board := LoadBoard(config.Default())

		assert.Equal(t, 0.0, board.LeftWall().Top)
		assert.Equal(t, 600.0, board.LeftWall().Bottom)
		assert.Equal(t, 60.0, board.LeftWall().CenterX())
		assert.Equal(t, 540.0, board.RightWall().CenterX())
	})

	t.Run("single peg board", func(t *testing.T) {
		cfg := config.Default()
		cfg.Board.NumRows = 0
		cfg.Board.PegsInFirstRow = 1

		board := LoadBoard(cfg)

		require.Equal(t, 1, board.NumPegs())
		assert.Equal(t, 2, board.NumBuckets())
		assert.Equal(t, 1, board.NumSlabs())
		assert.Equal(t, 240.0, board.PegAt(0).X())
		assert.Equal(t, 100.0, board.PegAt(0).Y())
		assert.Equal(t, 100.0, board.LastRowY())
		assert.Equal(t, 213.0, board.LeftWallX())
		assert.Equal(t, 267.0, board.RightWallX())
	})

	t.Run("odd spacing from ball radius", func(t *testing.T) {
		cfg := config.Default()
		cfg.Board.BallRadius = 2
		cfg.Board.NumRows = 3

		board := LoadBoard(cfg)

		assert.Equal(t, 5+6+7+8, board.NumPegs())
		assert.Equal(t, 100.0+3*12, board.LastRowY())
	})
}

func TestLoadBoard_Deterministic(t *testing.T) {
	cfg := config.Default()

	a := LoadBoard(cfg)
	b := LoadBoard(cfg)

	assert.Equal(t, a.Pegs(), b.Pegs())
	assert.Equal(t, a.Slabs(), b.Slabs())
	assert.Equal(t, a.LeftWall(), b.LeftWall())
	assert.Equal(t, a.RightWall(), b.RightWall())
	assert.Equal(t, a.LastRowY(), b.LastRowY())
}

func TestPegCount(t *testing.T) {
	assert.Equal(t, 1, pegCount(1, 0))
	assert.Equal(t, 110, pegCount(5, 10))
	assert.Equal(t, 3+4+5, pegCount(3, 2))
}
