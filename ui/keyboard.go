package ui

import (
	"spelling-snake/game/types"
	"spelling-snake/ui/command"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key int32
	cmd command.Command
}{
	{rl.KeyUp, command.TurnTo(types.Up)},
	{rl.KeyW, command.TurnTo(types.Up)},
	{rl.KeyRight, command.TurnTo(types.Right)},
	{rl.KeyD, command.TurnTo(types.Right)},
	{rl.KeyDown, command.TurnTo(types.Down)},
	{rl.KeyS, command.TurnTo(types.Down)},
	{rl.KeyLeft, command.TurnTo(types.Left)},
	{rl.KeyA, command.TurnTo(types.Left)},
	{rl.KeyEnter, command.Command{Kind: command.Start}},
	{rl.KeySpace, command.Command{Kind: command.Start}},
	{rl.KeyR, command.Command{Kind: command.Restart}},
	{rl.KeyM, command.Command{Kind: command.Menu}},
	{rl.KeyEscape, command.Command{Kind: command.Menu}},
	{rl.KeyT, command.Command{Kind: command.ToggleWrap}},
	{rl.KeyN, command.Command{Kind: command.ToggleSound}},
	{rl.KeyQ, command.Command{Kind: command.Quit}},
}

// PollKeys returns the commands for keys pressed since the last frame, in
// binding order
func PollKeys() []command.Command {
	var out []command.Command
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			out = append(out, b.cmd)
		}
	}
	return out
}
