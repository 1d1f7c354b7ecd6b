// Package ai steers the snake in demo mode. It only reads snapshots and
// answers with directions, the same way a keyboard adapter does.
package ai

import (
	"spelling-snake/game"
	"spelling-snake/game/types"
)

// Autopilot picks a heading once per simulation step
type Autopilot struct {
	lastSession string
	lastStep    int
}

func NewAutopilot() *Autopilot {
	return &Autopilot{lastStep: -1}
}

// Decide returns the direction to push for snap, or false when the game is
// not running or this step was already answered
func (a *Autopilot) Decide(snap game.Snapshot) (types.Direction, bool) {
	if snap.Phase != game.Active || len(snap.Snake) == 0 {
		return snap.Direction, false
	}
	if snap.SessionID == a.lastSession && snap.Steps == a.lastStep {
		return snap.Direction, false
	}
	a.lastSession = snap.SessionID
	a.lastStep = snap.Steps

	return Best(snap), true
}

// Best ranks straight, left and right; ties keep the current heading
func Best(snap game.Snapshot) types.Direction {
	sensors := NewSensors(snap)
	cur := snap.Direction

	best, bestScore := cur, sensors.Evaluate(cur)
	for _, d := range []types.Direction{cur.TurnLeft(), cur.TurnRight()} {
		if score := sensors.Evaluate(d); score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// Driver is the slice of the controller the autopilot needs
type Driver interface {
	Snapshot() game.Snapshot
	Push(types.Direction) bool
}

// Steer pushes this step's decision into the driver's input queue
func (a *Autopilot) Steer(d Driver) {
	if dir, ok := a.Decide(d.Snapshot()); ok {
		d.Push(dir)
	}
}
