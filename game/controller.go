package game

import (
	"time"

	"spelling-snake/game/clock"
	"spelling-snake/game/manager"
	"spelling-snake/game/types"

	"github.com/rs/zerolog/log"
)

// Sink consumes snapshots. Present must not call back into the Controller.
type Sink interface {
	Present(Snapshot)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Snapshot)

func (f SinkFunc) Present(s Snapshot) { f(s) }

// Controller is the session control surface. It owns the scheduler tasks
// that drive a session: the periodic tick and the deferred celebration and
// finding transitions. Every method runs on the frontend loop goroutine.
type Controller struct {
	session *Session
	sched   *clock.Scheduler
	stats   *manager.StatsManager
	sinks   []Sink

	tick       *clock.Task
	transition *clock.Task

	celebrationDelay time.Duration
	findingDelay     time.Duration
	startedAt        time.Time
}

func NewController(session *Session, sched *clock.Scheduler, stats *manager.StatsManager) *Controller {
	if stats == nil {
		stats = manager.NewStatsManager()
	}
	return &Controller{
		session:          session,
		sched:            sched,
		stats:            stats,
		celebrationDelay: session.cfg.CelebrationDelay,
		findingDelay:     session.cfg.FindingDelay,
	}
}

// AddSink registers a presentation consumer
func (c *Controller) AddSink(s Sink) {
	c.sinks = append(c.sinks, s)
}

func (c *Controller) Session() *Session {
	return c.session
}

func (c *Controller) Stats() *manager.StatsManager {
	return c.stats
}

func (c *Controller) Snapshot() Snapshot {
	return c.session.Snapshot()
}

// Start begins a game from the menu. While a game is running it is a no-op.
func (c *Controller) Start() {
	if c.session.Phase() == Active {
		return
	}
	c.stop()
	c.begin(c.session.Start())
}

// Restart abandons any running game and starts a new one
func (c *Controller) Restart() {
	c.stop()
	c.begin(c.session.Restart())
}

// ReturnToMenu stops all scheduled work and idles the session
func (c *Controller) ReturnToMenu() {
	c.stop()
	c.session.ReturnToMenu()
	c.publish(c.session.Snapshot())
}

// SetWrapMode publishes the new preference without an event so sinks do not
// replay the last one
func (c *Controller) SetWrapMode(wrap bool) {
	c.session.SetWrapMode(wrap)
	snap := c.session.Snapshot()
	snap.Event = NoEvent
	c.publish(snap)
}

// ToggleWrapMode flips the wrap preference and returns the new value
func (c *Controller) ToggleWrapMode() bool {
	wrap := c.session.WrapMode() != types.Wrap
	c.SetWrapMode(wrap)
	return wrap
}

func (c *Controller) Push(d types.Direction) bool {
	return c.session.Push(d)
}

// Update runs whatever scheduled work is due at now
func (c *Controller) Update(now time.Time) int {
	return c.sched.Run(now)
}

// Poll is Update at the scheduler clock's current time
func (c *Controller) Poll() int {
	return c.sched.Run(c.sched.Clock().Now())
}

func (c *Controller) begin(res StepResult) {
	c.startedAt = c.sched.Clock().Now()
	c.publish(res.Snapshot)
	if res.Event == GameOver {
		c.finish(res.Snapshot)
		return
	}
	c.tick = c.sched.Every(c.session.Interval(), c.onTick)
}

func (c *Controller) onTick(time.Time) {
	res := c.session.Tick()
	if res.Event == NoEvent {
		return
	}
	c.publish(res.Snapshot)

	switch res.Event {
	case GameOver:
		c.stop()
		c.finish(res.Snapshot)
	case WordComplete:
		c.transition.Cancel()
		c.transition = c.sched.After(c.celebrationDelay, c.onCelebrationDone)
	}
}

func (c *Controller) onCelebrationDone(time.Time) {
	res := c.session.AdvanceLevel()
	if res.Event == NoEvent {
		return
	}
	c.publish(res.Snapshot)

	if res.Event == GameOver {
		c.stop()
		c.finish(res.Snapshot)
		return
	}
	if interval := c.session.Interval(); c.tick != nil && c.tick.Interval() != interval {
		c.tick.Reset(interval)
	}
	c.transition = c.sched.After(c.findingDelay, c.onFindingDone)
}

func (c *Controller) onFindingDone(time.Time) {
	res := c.session.SpawnLetters()
	if res.Event == NoEvent {
		return
	}
	c.publish(res.Snapshot)
}

// stop cancels the tick and any pending transition
func (c *Controller) stop() {
	c.tick.Cancel()
	c.transition.Cancel()
	c.tick = nil
	c.transition = nil
}

func (c *Controller) finish(snap Snapshot) {
	if snap.Cause == ConfigurationError {
		log.Warn().Str("session", snap.SessionID).Msg("game not recorded: no playable word")
		return
	}
	c.stats.Record(snap.Score, snap.Animals, c.startedAt, c.sched.Clock().Now())
	log.Info().
		Str("session", snap.SessionID).
		Int("games", c.stats.Games()).
		Int("best", c.stats.Best()).
		Msg("game recorded")
}

func (c *Controller) publish(snap Snapshot) {
	for _, s := range c.sinks {
		s.Present(snap)
	}
}
