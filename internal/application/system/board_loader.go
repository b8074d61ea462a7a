package system

import (
	"github.com/younwookim/galton/internal/domain/entity"
	"github.com/younwookim/galton/internal/infrastructure/config"
)

// LoadBoard converts a BoardConfig into a Board entity.
//
// Row r holds PegsInFirstRow+r pegs; its leftmost peg sits (2 + r/2)
// spacings left of the screen center. The bucket slabs continue the last
// row's cadence, and the outer walls sit one spacing beyond the first and
// last slab. The layout is fully deterministic.
func LoadBoard(cfg *config.BoardConfig) *entity.Board {
	lay := cfg.Board
	dx := cfg.Spacing()
	dy := dx
	centerX := float64(cfg.Display.ScreenWidth) / 2
	screenH := float64(cfg.Display.ScreenHeight)

	pegs := make([]entity.Peg, 0, pegCount(lay.PegsInFirstRow, lay.NumRows))
	var lastRowY float64
	for row := 0; row <= lay.NumRows; row++ {
		pegX := centerX - (2+float64(row)/2)*dx
		pegY := lay.FirstRowY + float64(row)*dy
		for i := 0; i < lay.PegsInFirstRow+row; i++ {
			pegs = append(pegs, entity.NewPeg(pegX+float64(i)*dx, pegY, lay.PegRadius))
		}
		lastRowY = pegY
	}

	numBuckets := cfg.NumBuckets()
	bucketX := centerX - (2+float64(lay.NumRows)/2)*dx
	wall := func(cx float64) entity.Slab {
		return entity.Slab{Left: cx - lay.PegRadius, Right: cx + lay.PegRadius, Top: 0, Bottom: screenH}
	}
	leftWall := wall(bucketX - dx)

	slabs := make([]entity.Slab, 0, numBuckets-1)
	for i := 1; i < numBuckets; i++ {
		slabs = append(slabs, entity.Slab{
			Left:   bucketX - lay.PegRadius,
			Right:  bucketX + lay.PegRadius,
			Top:    lastRowY,
			Bottom: screenH,
		})
		bucketX += dx
	}
	rightWall := wall(bucketX)

	return entity.NewBoard(entity.BoardSpec{
		Pegs:       pegs,
		Slabs:      slabs,
		LeftWall:   leftWall,
		RightWall:  rightWall,
		LastRowY:   lastRowY,
		NumBuckets: numBuckets,
		ScreenW:    float64(cfg.Display.ScreenWidth),
		ScreenH:    screenH,
	})
}

// pegCount is the total number of pegs in rows 0..numRows.
func pegCount(firstRow, numRows int) int {
	rows := numRows + 1
	return rows*firstRow + numRows*rows/2
}
