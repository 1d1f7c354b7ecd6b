package clock

import (
	"sort"
	"time"
)

// Task is a handle to scheduled work. A cancelled task never runs again.
type Task struct {
	sched    *Scheduler
	seq      uint64
	interval time.Duration
	periodic bool
	due      time.Time
	fn       func(now time.Time)
	done     bool
}

// Cancel stops the task. Safe to call more than once and from inside a callback.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.done = true
}

// Reset restarts the task's countdown from the scheduler clock's current time.
// A periodic task adopts interval as its new period.
func (t *Task) Reset(interval time.Duration) {
	if t == nil || t.done {
		return
	}
	t.interval = interval
	t.due = t.sched.clock.Now().Add(interval)
}

// Active reports whether the task may still run
func (t *Task) Active() bool {
	return t != nil && !t.done
}

// Interval returns the task's period or delay
func (t *Task) Interval() time.Duration {
	return t.interval
}

// Due returns the next time the task will run
func (t *Task) Due() time.Time {
	return t.due
}

// Scheduler runs periodic and one-shot tasks when polled with Run.
// It is not safe for concurrent use; the frontend loop owns it.
type Scheduler struct {
	clock Clock
	tasks []*Task
	seq   uint64
}

func NewScheduler(c Clock) *Scheduler {
	if c == nil {
		c = Real{}
	}
	return &Scheduler{clock: c}
}

func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Every schedules fn to run once per interval, first after one interval
func (s *Scheduler) Every(interval time.Duration, fn func(now time.Time)) *Task {
	return s.add(interval, true, fn)
}

// After schedules fn to run once, delay from now
func (s *Scheduler) After(delay time.Duration, fn func(now time.Time)) *Task {
	return s.add(delay, false, fn)
}

func (s *Scheduler) add(d time.Duration, periodic bool, fn func(time.Time)) *Task {
	s.seq++
	t := &Task{
		sched:    s,
		seq:      s.seq,
		interval: d,
		periodic: periodic,
		due:      s.clock.Now().Add(d),
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Run executes every task due at now, in due order, and returns how many ran.
// A periodic task runs at most once per call; periods missed while the caller
// was late are dropped rather than replayed.
func (s *Scheduler) Run(now time.Time) int {
	var due []*Task
	for _, t := range s.tasks {
		if !t.done && !t.due.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		// an earlier callback may have cancelled or rescheduled it
		if t.done || t.due.After(now) {
			continue
		}
		if t.periodic {
			t.due = t.due.Add(t.interval)
			if !t.due.After(now) {
				t.due = now.Add(t.interval)
			}
		} else {
			t.done = true
		}
		t.fn(now)
		ran++
	}

	s.compact()
	return ran
}

// CancelAll cancels every pending task
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.done = true
	}
	s.tasks = s.tasks[:0]
}

// Pending returns the number of live tasks
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
