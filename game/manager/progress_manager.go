package manager

import (
	"time"

	"spelling-snake/game/types"

	"github.com/pkg/errors"
)

// Outcome classifies what a pickup did to the round
type Outcome int

const (
	Moved Outcome = iota
	LetterAdvanced
	WordComplete
	DecoyHit
	Exhausted
	LifeRestored
)

func (o Outcome) String() string {
	switch o {
	case LetterAdvanced:
		return "letter-advanced"
	case WordComplete:
		return "word-complete"
	case DecoyHit:
		return "decoy-hit"
	case Exhausted:
		return "exhausted"
	case LifeRestored:
		return "life-restored"
	default:
		return "moved"
	}
}

// ErrBadWord is returned when a round would start with an unusable word
var ErrBadWord = errors.New("word is empty or not uppercase A-Z")

// WordPicker is the dataset collaborator choosing the next round's word
type WordPicker interface {
	PickWord(excluding map[string]struct{}, maxLength int) (types.Word, error)
}

// ProgressRules holds the scoring and pacing constants
type ProgressRules struct {
	MaxStrikes         int
	LetterReward       int
	WordBonusPerLetter int
	InitialSpeed       time.Duration
	SpeedDecrement     time.Duration
	MinSpeed           time.Duration
	LengthForLevel     func(level int) int
}

// ProgressState is a copy of the tracker's counters
type ProgressState struct {
	Word           types.Word
	LetterIndex    int
	Score          int
	Level          int
	Strikes        int
	Speed          time.Duration
	AnimalsSpelled int
}

// ProgressManager tracks word, letter index, strikes, score, level and speed
type ProgressManager struct {
	rules   ProgressRules
	state   ProgressState
	history map[string]struct{}
}

func NewProgressManager(rules ProgressRules) *ProgressManager {
	pm := &ProgressManager{rules: rules}
	pm.Reset()
	return pm
}

// Reset clears the session, including the used-word history
func (pm *ProgressManager) Reset() {
	pm.state = ProgressState{
		Level: 1,
		Speed: pm.rules.InitialSpeed,
	}
	pm.history = make(map[string]struct{})
}

func (pm *ProgressManager) State() ProgressState {
	return pm.state
}

func (pm *ProgressManager) Rules() ProgressRules {
	return pm.rules
}

// History returns a copy of the words used this session
func (pm *ProgressManager) History() map[string]struct{} {
	out := make(map[string]struct{}, len(pm.history))
	for w := range pm.history {
		out[w] = struct{}{}
	}
	return out
}

// TargetChar is the next letter needed, or zero once the word is complete
func (pm *ProgressManager) TargetChar() byte {
	if pm.state.LetterIndex >= pm.state.Word.Len() {
		return 0
	}
	return pm.state.Word.Text[pm.state.LetterIndex]
}

func (pm *ProgressManager) WordDone() bool {
	return pm.state.Word.Len() > 0 && pm.state.LetterIndex >= pm.state.Word.Len()
}

// MaxWordLength is the difficulty cap for the current level
func (pm *ProgressManager) MaxWordLength() int {
	if pm.rules.LengthForLevel == nil {
		return types.MaxWordLength
	}
	return pm.rules.LengthForLevel(pm.state.Level)
}

// BeginWord picks the round's word from picker and records it in history
func (pm *ProgressManager) BeginWord(picker WordPicker) error {
	word, err := picker.PickWord(pm.History(), pm.MaxWordLength())
	if err != nil {
		return errors.Wrap(err, "pick word")
	}
	if !types.ValidWord(word.Text) {
		return errors.Wrapf(ErrBadWord, "got %q", word.Text)
	}
	pm.state.Word = word
	pm.state.LetterIndex = 0
	pm.history[word.Text] = struct{}{}
	return nil
}

func (pm *ProgressManager) OnMove() Outcome {
	return Moved
}

// OnDecoyHit adds a strike; reaching the maximum reports Exhausted
func (pm *ProgressManager) OnDecoyHit() Outcome {
	if pm.state.Strikes < pm.rules.MaxStrikes {
		pm.state.Strikes++
	}
	if pm.state.Strikes >= pm.rules.MaxStrikes {
		return Exhausted
	}
	return DecoyHit
}

// OnTargetHit scores the letter and advances; the last letter also pays the word bonus
func (pm *ProgressManager) OnTargetHit() Outcome {
	if pm.WordDone() {
		return Moved
	}
	pm.state.Score += pm.rules.LetterReward
	pm.state.LetterIndex++
	if pm.state.LetterIndex == pm.state.Word.Len() {
		pm.state.Score += pm.state.Word.Len() * pm.rules.WordBonusPerLetter
		pm.state.AnimalsSpelled++
		return WordComplete
	}
	return LetterAdvanced
}

// OnLifeTokenHit removes one strike, never below zero
func (pm *ProgressManager) OnLifeTokenHit() Outcome {
	pm.state.Strikes = max(0, pm.state.Strikes-1)
	return LifeRestored
}

// AdvanceLevel bumps the level, speeds up, and starts the next word
func (pm *ProgressManager) AdvanceLevel(picker WordPicker) error {
	pm.state.Level++
	pm.state.Speed = max(pm.rules.MinSpeed, pm.state.Speed-pm.rules.SpeedDecrement)
	return pm.BeginWord(picker)
}
