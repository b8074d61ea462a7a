package board

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/galton/internal/application/system"
)

// InputSystem reads the keyboard of the windowed host
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the keys pressed this frame
type InputState struct {
	Pause  bool
	Reset  bool
	Walls  bool
	Grid   bool
	Escape bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Pause:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Walls:  inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Grid:   inpututil.IsKeyJustPressed(ebiten.KeyG),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Commands converts the pressed keys into commands. Quit comes last so the
// other commands of the same frame still apply.
func (in InputState) Commands() []system.Command {
	var cmds []system.Command
	if in.Pause {
		cmds = append(cmds, system.CmdTogglePause)
	}
	if in.Reset {
		cmds = append(cmds, system.CmdReset)
	}
	if in.Walls {
		cmds = append(cmds, system.CmdToggleWalls)
	}
	if in.Grid {
		cmds = append(cmds, system.CmdToggleGrid)
	}
	if in.Escape {
		cmds = append(cmds, system.CmdQuit)
	}
	return cmds
}
