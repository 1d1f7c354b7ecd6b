package term

import (
	"spelling-snake/game/types"
	"spelling-snake/ui/command"

	"github.com/gdamore/tcell/v2"
)

// KeyCommand maps a terminal key event to a command. Printable keys share
// the window frontend's bindings.
func KeyCommand(ev *tcell.EventKey) command.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return command.TurnTo(types.Up)
	case tcell.KeyDown:
		return command.TurnTo(types.Down)
	case tcell.KeyLeft:
		return command.TurnTo(types.Left)
	case tcell.KeyRight:
		return command.TurnTo(types.Right)
	case tcell.KeyEnter:
		return command.Command{Kind: command.Start}
	case tcell.KeyEscape:
		return command.Command{Kind: command.Menu}
	case tcell.KeyCtrlC:
		return command.Command{Kind: command.Quit}
	case tcell.KeyRune:
		return command.FromRune(ev.Rune())
	}
	return command.Command{}
}
