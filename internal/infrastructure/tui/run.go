package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/galton/internal/application/sim"
	"github.com/younwookim/galton/internal/application/state"
	"github.com/younwookim/galton/internal/application/system"
)

// CommandFor maps a key press to a command.
func CommandFor(key tcell.Key, ch rune) system.Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return system.CmdQuit
	case tcell.KeyTab:
		return system.CmdToggleWalls
	case tcell.KeyRune:
		switch ch {
		case ' ':
			return system.CmdTogglePause
		case 'r', 'R':
			return system.CmdReset
		case 'g', 'G':
			return system.CmdToggleGrid
		case 'q', 'Q':
			return system.CmdQuit
		}
	}
	return system.CmdNone
}

// Host steps a simulation on a fixed ticker and draws it after every tick.
type Host struct {
	screen   tcell.Screen
	sim      *sim.Simulation
	renderer *Renderer
	state    state.RunState
	dt       float64
	interval time.Duration
}

// NewHost creates a terminal host for s at fps frames per second.
// The screen must already be initialized.
func NewHost(screen tcell.Screen, s *sim.Simulation, fps int) *Host {
	if fps <= 0 {
		fps = 60
	}
	return &Host{
		screen:   screen,
		sim:      s,
		renderer: NewRenderer(screen, s),
		state:    state.StateRunning,
		dt:       1.0 / float64(fps),
		interval: time.Second / time.Duration(fps),
	}
}

// State returns the current run state.
func (h *Host) State() state.RunState {
	return h.state
}

// Renderer returns the host's renderer.
func (h *Host) Renderer() *Renderer {
	return h.renderer
}

// Apply executes c and reports whether the host should keep running.
// The terminal has no grid, so CmdToggleGrid is ignored.
func (h *Host) Apply(c system.Command) bool {
	switch c {
	case system.CmdTogglePause:
		h.state = h.state.Toggle()
	case system.CmdReset:
		h.sim.Reset()
		h.state = state.StateRunning
	case system.CmdToggleWalls:
		h.renderer.ShowWalls = !h.renderer.ShowWalls
	case system.CmdQuit:
		return false
	}
	return true
}

// Tick steps the simulation once if running and redraws.
func (h *Host) Tick() error {
	if h.state.Advancing() {
		if err := h.sim.Step(h.dt); err != nil {
			return err
		}
		if h.sim.Done() {
			h.state = state.StateFinished
		}
	}
	h.renderer.Draw(h.state)
	return nil
}

// Run polls screen events on a separate goroutine and ticks until the user
// quits or ctx is done. Only this goroutine touches the simulation.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.renderer.Draw(h.state)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !h.Apply(CommandFor(ev.Key(), ev.Rune())) {
					return nil
				}
			case *tcell.EventResize:
				h.screen.Sync()
			}

		case <-ticker.C:
			if err := h.Tick(); err != nil {
				return err
			}
		}
	}
}
