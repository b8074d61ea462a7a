package system

// Command is a user request to a running board, independent of the host
// that produced it.
type Command int

const (
	CmdNone Command = iota
	CmdTogglePause
	CmdReset
	CmdToggleWalls
	CmdToggleGrid
	CmdQuit
)

// String returns the string representation of the command
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdTogglePause:
		return "TogglePause"
	case CmdReset:
		return "Reset"
	case CmdToggleWalls:
		return "ToggleWalls"
	case CmdToggleGrid:
		return "ToggleGrid"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
