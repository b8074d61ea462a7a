package system

import (
	"math/rand"

	"github.com/younwookim/galton/internal/domain/entity"
)

// SpawnBalls creates n balls at rest on the top edge, each offset from
// the horizontal center by a uniform value in [-jitter, jitter].
func SpawnBalls(n int, board *entity.Board, radius, jitter float64, rng *rand.Rand) []entity.Ball {
	centerX := board.ScreenW() / 2
	balls := make([]entity.Ball, 0, n)
	for i := 0; i < n; i++ {
		offset := (rng.Float64()*2 - 1) * jitter
		balls = append(balls, entity.NewBall(centerX+offset, 0, radius))
	}
	return balls
}
