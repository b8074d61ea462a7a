package main

import (
	"fmt"
	"strings"

	"github.com/younwookim/galton/internal/application/sim"
)

// histogramWidth is the longest bar in characters.
const histogramWidth = 50

// Report summarizes a headless run.
type Report struct {
	Frames   int
	Finished bool
	Stats    sim.Stats
	Counts   []int
	Mean     float64
}

// runHeadless steps s with a fixed dt until every ball has left or
// maxFrames is reached.
func runHeadless(s *sim.Simulation, maxFrames int, dt float64) (Report, error) {
	for frame := 0; frame < maxFrames && !s.Done(); frame++ {
		if err := s.Step(dt); err != nil {
			return Report{}, fmt.Errorf("frame %d: %w", frame, err)
		}
	}

	t := s.Tally()
	stats := s.Stats()
	return Report{
		Frames:   stats.Frame,
		Finished: s.Done(),
		Stats:    stats,
		Counts:   t.Counts(),
		Mean:     t.Mean(),
	}, nil
}

// Lines renders the report as a text histogram, one line per bin.
func (r Report) Lines() []string {
	total := 0
	peak := 0
	for _, c := range r.Counts {
		total += c
		peak = max(peak, c)
	}

	lines := make([]string, 0, len(r.Counts)+2)
	status := "finished"
	if !r.Finished {
		status = "stopped"
	}
	lines = append(lines, fmt.Sprintf("%s after %d frames: %d settled, %d peg hits, %d bucket hits, mean bin %.2f",
		status, r.Frames, total, r.Stats.PegHits, r.Stats.BucketHits, r.Mean))
	for i, c := range r.Counts {
		n := 0
		if peak > 0 {
			n = c * histogramWidth / peak
		}
		lines = append(lines, fmt.Sprintf("%3d %4d %s", i, c, strings.Repeat("#", n)))
	}
	return lines
}
