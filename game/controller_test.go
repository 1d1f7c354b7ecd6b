package game

import (
	"testing"
	"time"

	"spelling-snake/game/clock"
	"spelling-snake/game/manager"
	"spelling-snake/game/types"

	"golang.org/x/exp/rand"
)

type recorder struct {
	events []Event
	last   Snapshot
}

func (r *recorder) Present(s Snapshot) {
	r.events = append(r.events, s.Event)
	r.last = s
}

func (r *recorder) count(ev Event) int {
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}

func newTestController(t *testing.T, wrap bool, list ...string) (*Controller, *clock.MockClock, *recorder) {
	t.Helper()
	mc := clock.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	picker := &listPicker{}
	for _, w := range list {
		picker.words = append(picker.words, types.Word{Text: w})
	}
	s := NewSession(testConfig(wrap), picker, rand.New(rand.NewSource(21)))
	c := NewController(s, clock.NewScheduler(mc), manager.NewStatsManager())
	rec := &recorder{}
	c.AddSink(rec)
	return c, mc, rec
}

// primeWordCompletion leaves the session one target pickup away from finishing CAT
func primeWordCompletion(c *Controller) {
	s := c.Session()
	s.progress.OnTargetHit()
	s.progress.OnTargetHit()
	next := s.snake.GetHead().Add(types.Right)
	s.letters = []types.Letter{{Cell: next, Char: 'T', Kind: types.Target}}
}

func TestControllerTicksAtInterval(t *testing.T) {
	c, mc, rec := newTestController(t, true, "CAT")
	c.Start()
	if rec.count(Started) != 1 {
		t.Fatalf("events = %v", rec.events)
	}
	c.Session().letters = nil

	c.Update(mc.Advance(100 * time.Millisecond))
	if c.Snapshot().Snake[0] != (types.Cell{X: 5, Y: 8}) {
		t.Fatal("ticked before the interval elapsed")
	}
	c.Update(mc.Advance(50 * time.Millisecond))
	if c.Snapshot().Snake[0] != (types.Cell{X: 6, Y: 8}) {
		t.Fatalf("head = %v after one interval", c.Snapshot().Snake[0])
	}

	// Start while running is ignored
	id := c.Session().ID
	c.Start()
	if c.Session().ID != id {
		t.Error("Start restarted a running game")
	}
}

func TestControllerWordTransition(t *testing.T) {
	c, mc, rec := newTestController(t, true, "CAT", "DOG")
	c.Start()
	primeWordCompletion(c)

	c.Update(mc.Advance(150 * time.Millisecond))
	if rec.count(WordComplete) != 1 {
		t.Fatalf("events = %v", rec.events)
	}

	c.Update(mc.Advance(2400 * time.Millisecond))
	if rec.count(RoundStarted) != 0 {
		t.Fatal("level advanced before the celebration delay")
	}
	c.Update(mc.Advance(100 * time.Millisecond))
	if rec.count(RoundStarted) != 1 {
		t.Fatalf("no RoundStarted after celebration: %v", rec.events)
	}
	if c.tick.Interval() != 147*time.Millisecond {
		t.Errorf("tick interval = %v, want 147ms", c.tick.Interval())
	}
	if len(rec.last.Letters) != 0 {
		t.Error("letters placed while finding the next animal")
	}

	c.Update(mc.Advance(800 * time.Millisecond))
	if rec.count(LettersSpawned) != 1 {
		t.Fatalf("no LettersSpawned after finding delay: %v", rec.events)
	}
	snap := c.Snapshot()
	if snap.Level != 2 || snap.Word.Text != "DOG" {
		t.Errorf("level %d word %s", snap.Level, snap.Word.Text)
	}
	if _, ok := snap.Target(); !ok {
		t.Error("no target after LettersSpawned")
	}
}

func TestRestartCancelsPendingTransition(t *testing.T) {
	c, mc, rec := newTestController(t, true, "CAT", "DOG")
	c.Start()
	primeWordCompletion(c)
	c.Update(mc.Advance(150 * time.Millisecond))

	pending := c.transition
	if !pending.Active() {
		t.Fatal("no celebration task after WordComplete")
	}
	c.Restart()
	if pending.Active() {
		t.Error("celebration task survived restart")
	}

	c.Update(mc.Advance(2600 * time.Millisecond))
	if rec.count(RoundStarted) != 0 {
		t.Errorf("stale transition advanced the fresh session: %v", rec.events)
	}
	if c.Snapshot().Level != 1 {
		t.Errorf("Level = %d", c.Snapshot().Level)
	}
}

func TestReturnToMenuStopsScheduling(t *testing.T) {
	c, mc, _ := newTestController(t, true, "CAT")
	c.Start()
	primeWordCompletion(c)
	c.Update(mc.Advance(150 * time.Millisecond))

	c.ReturnToMenu()
	head := c.Snapshot().Snake[0]
	c.Update(mc.Advance(5 * time.Second))

	if c.Session().Phase() != Idle {
		t.Errorf("phase = %v", c.Session().Phase())
	}
	if c.Snapshot().Snake[0] != head {
		t.Error("snake moved in the menu")
	}
	if c.sched.Pending() != 0 {
		t.Errorf("%d tasks still pending", c.sched.Pending())
	}
	if c.Push(types.Up) {
		t.Error("input accepted in the menu")
	}
}

func TestGameOverRecordsStats(t *testing.T) {
	c, mc, rec := newTestController(t, false, "CAT")
	c.Start()
	c.Session().input.Reset(types.Left)

	c.Update(mc.Advance(150 * time.Millisecond))
	if rec.last.Event != GameOver || rec.last.Cause != SelfCollision {
		t.Fatalf("last = %v/%v", rec.last.Event, rec.last.Cause)
	}
	if c.Stats().Games() != 1 {
		t.Errorf("Games = %d", c.Stats().Games())
	}
	if c.sched.Pending() != 0 {
		t.Errorf("%d tasks pending after game over", c.sched.Pending())
	}

	c.Update(mc.Advance(time.Second))
	if rec.count(Moved) != 0 || rec.count(GameOver) != 1 {
		t.Errorf("events after game over: %v", rec.events)
	}

	c.Start()
	if c.Session().Phase() != Active {
		t.Error("Start after game over did not begin a game")
	}
}

func TestConfigurationErrorAtStart(t *testing.T) {
	c, _, rec := newTestController(t, true, "")
	c.Start()
	if rec.last.Event != GameOver || rec.last.Cause != ConfigurationError {
		t.Fatalf("last = %v/%v", rec.last.Event, rec.last.Cause)
	}
	if c.sched.Pending() != 0 {
		t.Error("tick scheduled for a session that never started")
	}
	if c.Stats().Games() != 0 {
		t.Errorf("failed start recorded as %d games", c.Stats().Games())
	}
}

func TestToggleWrapMode(t *testing.T) {
	c, _, rec := newTestController(t, false, "CAT")
	if !c.ToggleWrapMode() {
		t.Fatal("toggle from solid returned false")
	}
	if rec.last.Wrap != types.Wrap {
		t.Errorf("idle snapshot wrap = %v", rec.last.Wrap)
	}
	if c.ToggleWrapMode() {
		t.Error("second toggle returned true")
	}
}

func TestToggleWrapModeRepublishesNoEvent(t *testing.T) {
	c, mc, rec := newTestController(t, false, "CAT")
	c.Start()
	c.Session().input.Reset(types.Left)
	c.Update(mc.Advance(150 * time.Millisecond))
	if rec.count(GameOver) != 1 {
		t.Fatalf("events = %v", rec.events)
	}

	c.ToggleWrapMode()
	if rec.count(GameOver) != 1 {
		t.Errorf("toggle re-sent game over: %v", rec.events)
	}
	if rec.last.Event != NoEvent || rec.last.Cause != SelfCollision {
		t.Errorf("toggle snapshot = %v/%v", rec.last.Event, rec.last.Cause)
	}

	c.Start()
	c.Session().letters = []types.Letter{{Cell: types.Cell{X: 6, Y: 8}, Char: 'Q', Kind: types.Decoy}}
	c.Update(mc.Advance(150 * time.Millisecond))
	if rec.count(DecoyHit) != 1 {
		t.Fatalf("events = %v", rec.events)
	}
	c.ToggleWrapMode()
	if rec.count(DecoyHit) != 1 {
		t.Errorf("toggle re-sent decoy hit: %v", rec.events)
	}
}
