package entity

import "slices"

// Board holds the fixed geometry of a Galton board: pegs, bucket slabs
// and the two outer walls. It is built once and never changes; accessors
// return copies.
type Board struct {
	pegs  []Peg
	slabs []Slab

	leftWall  Slab
	rightWall Slab

	lastRowY   float64
	numBuckets int
	screenW    float64
	screenH    float64
}

// BoardSpec carries the generated geometry into NewBoard.
type BoardSpec struct {
	Pegs       []Peg
	Slabs      []Slab
	LeftWall   Slab
	RightWall  Slab
	LastRowY   float64
	NumBuckets int
	ScreenW    float64
	ScreenH    float64
}

// NewBoard freezes the given geometry into a Board.
func NewBoard(spec BoardSpec) *Board {
	return &Board{
		pegs:       slices.Clone(spec.Pegs),
		slabs:      slices.Clone(spec.Slabs),
		leftWall:   spec.LeftWall,
		rightWall:  spec.RightWall,
		lastRowY:   spec.LastRowY,
		numBuckets: spec.NumBuckets,
		screenW:    spec.ScreenW,
		screenH:    spec.ScreenH,
	}
}

// Pegs returns the pegs in generation order (row by row, left to right).
func (b *Board) Pegs() []Peg { return slices.Clone(b.pegs) }

// Slabs returns the bucket slabs left to right.
func (b *Board) Slabs() []Slab { return slices.Clone(b.slabs) }

// NumPegs returns the peg count without copying.
func (b *Board) NumPegs() int { return len(b.pegs) }

// NumSlabs returns the slab count without copying.
func (b *Board) NumSlabs() int { return len(b.slabs) }

// PegAt returns the i-th peg.
func (b *Board) PegAt(i int) Peg { return b.pegs[i] }

// SlabAt returns the i-th slab.
func (b *Board) SlabAt(i int) Slab { return b.slabs[i] }

// LeftWall returns the full-height slab bounding the board on the left.
func (b *Board) LeftWall() Slab { return b.leftWall }

// RightWall returns the full-height slab bounding the board on the right.
func (b *Board) RightWall() Slab { return b.rightWall }

// LeftWallX is the inner (right) edge of the left wall.
func (b *Board) LeftWallX() float64 { return b.leftWall.Right }

// RightWallX is the inner (left) edge of the right wall.
func (b *Board) RightWallX() float64 { return b.rightWall.Left }

// LastRowY is the y of the last peg row; below it is the bucket zone.
func (b *Board) LastRowY() float64 { return b.lastRowY }

// NumBuckets is the number of bins between the walls.
func (b *Board) NumBuckets() int { return b.numBuckets }

func (b *Board) ScreenW() float64 { return b.screenW }

func (b *Board) ScreenH() float64 { return b.screenH }

// InPegZone reports whether y is at or above the last peg row.
func (b *Board) InPegZone(y float64) bool {
	return y <= b.lastRowY
}

// BinIndex returns the bin under x, counting the slabs whose center lies
// left of x. The result is always in [0, NumBuckets).
func (b *Board) BinIndex(x float64) int {
	idx := 0
	for _, s := range b.slabs {
		if x > s.CenterX() {
			idx++
		}
	}
	if idx >= b.numBuckets {
		idx = b.numBuckets - 1
	}
	return idx
}
