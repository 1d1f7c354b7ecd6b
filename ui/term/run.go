package term

import (
	"time"

	"spelling-snake/ai"
	"spelling-snake/game"
	"spelling-snake/ui/command"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const defaultFrame = 16 * time.Millisecond

// Loop owns an initialized screen and drives the controller from it
type Loop struct {
	Screen     tcell.Screen
	Controller *game.Controller
	Dispatcher *command.Dispatcher
	Renderer   *Renderer
	Pilot      *ai.Autopilot // nil for manual play
	Frame      time.Duration
}

// Run polls input and the scheduler until a quit command arrives. The
// caller initializes the screen and calls Fini afterwards; a panic inside
// the loop restores the terminal before propagating.
func (l *Loop) Run() {
	defer func() {
		if r := recover(); r != nil {
			l.Screen.Fini()
			panic(r)
		}
	}()

	frame := l.Frame
	if frame <= 0 {
		frame = defaultFrame
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.Screen.PollEvent()
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

	l.Renderer.Draw()
	for {
		select {
		case ev := <-events:
			if l.handle(ev) {
				log.Info().Msg("terminal frontend quit")
				return
			}
			l.Renderer.Draw()

		case <-ticker.C:
			if l.Pilot != nil {
				l.Pilot.Steer(l.Controller)
			}
			l.Controller.Poll()
			l.Renderer.Draw()
		}
	}
}

func (l *Loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := KeyCommand(ev)
		if cmd.Kind == command.None {
			return false
		}
		return l.Dispatcher.Dispatch(cmd)
	case *tcell.EventResize:
		l.Screen.Sync()
	}
	return false
}
