// Package command maps frontend key presses onto controller operations so
// the window and terminal frontends share one binding table.
package command

import (
	"unicode"

	"spelling-snake/game"
	"spelling-snake/game/types"

	"github.com/rs/zerolog/log"
)

type Kind int

const (
	None Kind = iota
	Turn
	Start
	Restart
	Menu
	ToggleWrap
	ToggleSound
	Quit
)

func (k Kind) String() string {
	switch k {
	case Turn:
		return "turn"
	case Start:
		return "start"
	case Restart:
		return "restart"
	case Menu:
		return "menu"
	case ToggleWrap:
		return "toggle-wrap"
	case ToggleSound:
		return "toggle-sound"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

type Command struct {
	Kind Kind
	Dir  types.Direction
}

func TurnTo(d types.Direction) Command {
	return Command{Kind: Turn, Dir: d}
}

// FromRune maps the printable bindings: WASD, space, r, m, t, n and q
func FromRune(r rune) Command {
	switch unicode.ToLower(r) {
	case 'w':
		return TurnTo(types.Up)
	case 'a':
		return TurnTo(types.Left)
	case 's':
		return TurnTo(types.Down)
	case 'd':
		return TurnTo(types.Right)
	case ' ':
		return Command{Kind: Start}
	case 'r':
		return Command{Kind: Restart}
	case 'm':
		return Command{Kind: Menu}
	case 't':
		return Command{Kind: ToggleWrap}
	case 'n':
		return Command{Kind: ToggleSound}
	case 'q':
		return Command{Kind: Quit}
	}
	return Command{}
}

// SoundToggle is the audio collaborator's mute switch
type SoundToggle interface {
	Toggle() bool
}

// Dispatcher applies commands to a controller
type Dispatcher struct {
	ctrl  *game.Controller
	sound SoundToggle
}

func NewDispatcher(ctrl *game.Controller, sound SoundToggle) *Dispatcher {
	return &Dispatcher{ctrl: ctrl, sound: sound}
}

// Dispatch runs cmd and reports whether the frontend should exit
func (d *Dispatcher) Dispatch(cmd Command) (quit bool) {
	phase := d.ctrl.Session().Phase()

	switch cmd.Kind {
	case Turn:
		d.ctrl.Push(cmd.Dir)
	case Start:
		if phase != game.Active {
			d.ctrl.Start()
		}
	case Restart:
		if phase != game.Idle {
			d.ctrl.Restart()
		}
	case Menu:
		if phase != game.Idle {
			d.ctrl.ReturnToMenu()
		}
	case ToggleWrap:
		wrap := d.ctrl.ToggleWrapMode()
		log.Debug().Bool("wrap", wrap).Msg("wrap mode toggled")
	case ToggleSound:
		if d.sound != nil {
			d.sound.Toggle()
		}
	case Quit:
		return true
	}
	return false
}
