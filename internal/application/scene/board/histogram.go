package board

import (
	"github.com/younwookim/galton/internal/application/system"
	"github.com/younwookim/galton/internal/domain/entity"
)

// Bar is one histogram column in screen coordinates.
type Bar struct {
	X, Y, W, H float64
	Count      int
}

// BinEdges returns NumBuckets+1 x positions bounding the bins: the inner
// faces of the walls with the slab centers in between.
func BinEdges(b *entity.Board) []float64 {
	edges := make([]float64, 0, b.NumSlabs()+2)
	edges = append(edges, b.LeftWallX())
	for i := 0; i < b.NumSlabs(); i++ {
		edges = append(edges, b.SlabAt(i).CenterX())
	}
	return append(edges, b.RightWallX())
}

// HistogramBars lays out one bar per bin standing on baseY. The fullest bin
// is maxH tall. Empty bins get a zero-height bar.
func HistogramBars(b *entity.Board, t *system.Tally, baseY, maxH float64) []Bar {
	edges := BinEdges(b)
	heights := t.Normalized()
	bars := make([]Bar, 0, len(heights))
	for i, n := range heights {
		if i+1 >= len(edges) {
			break
		}
		h := n * maxH
		bars = append(bars, Bar{
			X:     edges[i],
			Y:     baseY - h,
			W:     edges[i+1] - edges[i],
			H:     h,
			Count: t.Count(i),
		})
	}
	return bars
}
