package game

import (
	"strings"
	"time"

	"spelling-snake/game/types"
)

// Phase is the session lifecycle state
type Phase int

const (
	Idle Phase = iota
	Active
	Terminating
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Terminating:
		return "terminating"
	default:
		return "idle"
	}
}

// Event tags what a step did
type Event int

const (
	NoEvent Event = iota
	Started
	Moved
	LetterAdvanced
	WordComplete
	DecoyHit
	LifeRestored
	RoundStarted
	LettersSpawned
	GameOver
)

var eventNames = map[Event]string{
	NoEvent:        "none",
	Started:        "started",
	Moved:          "moved",
	LetterAdvanced: "letter-advanced",
	WordComplete:   "word-complete",
	DecoyHit:       "decoy-hit",
	LifeRestored:   "life-restored",
	RoundStarted:   "round-started",
	LettersSpawned: "letters-spawned",
	GameOver:       "game-over",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Cause explains a GameOver
type Cause int

const (
	NoCause Cause = iota
	Wall
	SelfCollision
	Strikes
	ConfigurationError
)

func (c Cause) String() string {
	switch c {
	case Wall:
		return "wall"
	case SelfCollision:
		return "self-collision"
	case Strikes:
		return "strikes"
	case ConfigurationError:
		return "configuration-error"
	default:
		return "none"
	}
}

// RoundState is the sub-state of an active session
type RoundState int

const (
	Playing RoundState = iota
	Celebrating
	Finding
)

func (r RoundState) String() string {
	switch r {
	case Celebrating:
		return "celebrating"
	case Finding:
		return "finding"
	default:
		return "playing"
	}
}

// Snapshot is an immutable copy of everything a presentation layer needs
type Snapshot struct {
	SessionID string
	Phase     Phase
	Round     RoundState
	Event     Event
	Cause     Cause

	Grid      types.Grid
	Wrap      types.WrapMode
	Snake     []types.Cell
	Direction types.Direction
	Letters   []types.Letter

	Word        types.Word
	LetterIndex int
	Score       int
	Level       int
	Strikes     int
	MaxStrikes  int
	Speed       time.Duration
	Animals     int
	Steps       int
}

// Mask renders the word with collected letters revealed and the rest as '?'.
// The whole word shows while celebrating.
func (s Snapshot) Mask() string {
	if s.Word.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < s.Word.Len(); i++ {
		if i < s.LetterIndex || s.Round == Celebrating {
			b.WriteByte(s.Word.Text[i])
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Hearts draws one full marker per remaining life and one empty marker per
// strike taken
func (s Snapshot) Hearts(full, empty string) string {
	left := max(0, min(s.MaxStrikes-s.Strikes, s.MaxStrikes))
	return strings.Repeat(full, left) + strings.Repeat(empty, max(0, s.MaxStrikes)-left)
}

// Celebrating reports the pause after a completed word
func (s Snapshot) Celebrating() bool {
	return s.Phase == Active && s.Round == Celebrating
}

// Target returns the live target letter, if any
func (s Snapshot) Target() (types.Letter, bool) {
	for _, l := range s.Letters {
		if l.Kind == types.Target {
			return l, true
		}
	}
	return types.Letter{}, false
}

// StepResult is what a session operation reports to its caller
type StepResult struct {
	Event    Event
	Cause    Cause
	Snapshot Snapshot
}
