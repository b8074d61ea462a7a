package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/galton/internal/domain/geom"
)

func TestNewBall(t *testing.T) {
	b := NewBall(300.5, 0, 5)

	assert.Equal(t, 300.5, b.X)
	assert.Equal(t, 0.0, b.Y)
	assert.Equal(t, 5.0, b.R)
	assert.Equal(t, 0.0, b.VX)
	assert.Equal(t, 0.0, b.VY)
	assert.Equal(t, PhaseSpawned, b.Phase)
}

func TestBall_ApplyGravity(t *testing.T) {
	tests := []struct {
		name    string
		vy      float64
		gravity float64
		dt      float64
		wantVY  float64
	}{
		{"from rest", 0, 300, 0.5, 150},
		{"already falling", 100, 300, 0.1, 130},
		{"moving up", -60, 300, 0.1, -30},
		{"zero dt", 42, 300, 0, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{VY: tt.vy}
			b.ApplyGravity(tt.gravity, tt.dt)
			assert.InDelta(t, tt.wantVY, b.VY, 1e-9)
			assert.Equal(t, 0.0, b.VX, "gravity must not touch VX")
		})
	}
}

func TestBall_Move(t *testing.T) {
	b := Ball{X: 10, Y: 20, VX: -40, VY: 100}
	b.Move(0.25)

	assert.InDelta(t, 0.0, b.X, 1e-9)
	assert.InDelta(t, 45.0, b.Y, 1e-9)
}

func TestBall_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"on screen", 300, false},
		{"touching bottom edge", 600, false},
		{"half below", 603, false},
		{"fully below", 605, true},
		{"far below", 900, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Y: tt.y, R: 5}
			assert.Equal(t, tt.want, b.OutOfBounds(600))
		})
	}
}

func TestBall_VelocityRoundTrip(t *testing.T) {
	b := Ball{}
	b.SetVelocity(geom.V(3, -4))
	require.Equal(t, geom.V(3, -4), b.Velocity())
	assert.Equal(t, 5.0, b.Speed())

	b.SetPosition(geom.V(7, 8))
	assert.Equal(t, geom.V(7, 8), b.Position())
}

func TestBall_AdvanceNeverRegresses(t *testing.T) {
	b := Ball{}

	b.Advance(PhasePegZone)
	assert.Equal(t, PhasePegZone, b.Phase)

	b.Advance(PhaseSettling)
	assert.Equal(t, PhaseSettling, b.Phase)

	b.Advance(PhaseBucketZone)
	assert.Equal(t, PhaseSettling, b.Phase, "phase must not go backwards")

	b.Advance(PhaseRemoved)
	assert.Equal(t, PhaseRemoved, b.Phase)
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseSpawned, "Spawned"},
		{PhasePegZone, "PegZone"},
		{PhaseBucketZone, "BucketZone"},
		{PhaseSettling, "Settling"},
		{PhaseRemoved, "Removed"},
		{Phase(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}
