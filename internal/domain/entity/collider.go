package entity

import "github.com/younwookim/galton/internal/domain/geom"

// Collider is anything with a circular footprint.
type Collider interface {
	Position() geom.Vec2
	Radius() float64
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(a, b Collider) bool {
	return geom.Dist(a.Position(), b.Position()) <= a.Radius()+b.Radius()
}

// Slab is a vertical bar spanning [Left, Right] horizontally and
// [Top, Bottom] vertically. Bucket walls are slabs.
type Slab struct {
	Left, Right float64
	Top, Bottom float64
}

// CenterX returns the horizontal midpoint of the slab.
func (s Slab) CenterX() float64 {
	return (s.Left + s.Right) / 2
}

// Width returns Right - Left.
func (s Slab) Width() float64 {
	return s.Right - s.Left
}

// SlabOverlap reports whether the horizontal extent of c overlaps the slab.
// Only x is tested; the slab is assumed to cover the collider vertically.
func SlabOverlap(c Collider, s Slab) bool {
	x := c.Position().X
	r := c.Radius()
	return x+r >= s.Left && x-r <= s.Right
}
