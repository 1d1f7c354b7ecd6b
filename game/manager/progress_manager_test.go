package manager

import (
	"testing"
	"time"

	"spelling-snake/game/types"

	"github.com/pkg/errors"
)

type fixedPicker struct {
	words []types.Word
	calls int
	seen  []map[string]struct{}
}

func (p *fixedPicker) PickWord(excluding map[string]struct{}, maxLength int) (types.Word, error) {
	p.seen = append(p.seen, excluding)
	if len(p.words) == 0 {
		return types.Word{}, errors.New("no words")
	}
	w := p.words[p.calls%len(p.words)]
	p.calls++
	return w, nil
}

func testRules() ProgressRules {
	return ProgressRules{
		MaxStrikes:         3,
		LetterReward:       10,
		WordBonusPerLetter: 10,
		InitialSpeed:       150 * time.Millisecond,
		SpeedDecrement:     3 * time.Millisecond,
		MinSpeed:           80 * time.Millisecond,
	}
}

func TestTargetHitsCompleteWord(t *testing.T) {
	pm := NewProgressManager(testRules())
	picker := &fixedPicker{words: []types.Word{{Text: "CAT", Glyph: "cat"}}}
	if err := pm.BeginWord(picker); err != nil {
		t.Fatalf("BeginWord: %v", err)
	}

	if pm.TargetChar() != 'C' {
		t.Fatalf("TargetChar = %q, want C", pm.TargetChar())
	}
	if got := pm.OnTargetHit(); got != LetterAdvanced {
		t.Fatalf("first hit = %v, want LetterAdvanced", got)
	}
	if got := pm.OnTargetHit(); got != LetterAdvanced {
		t.Fatalf("second hit = %v, want LetterAdvanced", got)
	}
	before := pm.State().Score
	if got := pm.OnTargetHit(); got != WordComplete {
		t.Fatalf("last hit = %v, want WordComplete", got)
	}

	st := pm.State()
	if st.LetterIndex != 3 {
		t.Errorf("LetterIndex = %d, want 3", st.LetterIndex)
	}
	if st.Score-before != 10+3*10 {
		t.Errorf("final letter scored %d, want 40", st.Score-before)
	}
	if st.Score != 60 {
		t.Errorf("Score = %d, want 60", st.Score)
	}
	if st.AnimalsSpelled != 1 {
		t.Errorf("AnimalsSpelled = %d, want 1", st.AnimalsSpelled)
	}
	if pm.TargetChar() != 0 {
		t.Errorf("TargetChar after completion = %q, want 0", pm.TargetChar())
	}
	// Extra hits after completion change nothing
	if got := pm.OnTargetHit(); got != Moved || pm.State().Score != 60 {
		t.Errorf("hit after completion = %v score %d", got, pm.State().Score)
	}
}

func TestDecoyStrikesExhaust(t *testing.T) {
	pm := NewProgressManager(testRules())

	if got := pm.OnDecoyHit(); got != DecoyHit {
		t.Fatalf("strike 1 = %v", got)
	}
	if got := pm.OnDecoyHit(); got != DecoyHit {
		t.Fatalf("strike 2 = %v", got)
	}
	if got := pm.OnDecoyHit(); got != Exhausted {
		t.Fatalf("strike 3 = %v, want Exhausted", got)
	}
	if pm.State().Strikes != 3 {
		t.Errorf("Strikes = %d, want 3", pm.State().Strikes)
	}
	pm.OnDecoyHit()
	if pm.State().Strikes != 3 {
		t.Errorf("Strikes exceeded max: %d", pm.State().Strikes)
	}
	if pm.State().Score != 0 {
		t.Errorf("decoys changed score to %d", pm.State().Score)
	}
}

func TestLifeTokenNeverBelowZero(t *testing.T) {
	pm := NewProgressManager(testRules())

	pm.OnLifeTokenHit()
	if pm.State().Strikes != 0 {
		t.Fatalf("Strikes = %d after token at zero", pm.State().Strikes)
	}
	pm.OnDecoyHit()
	pm.OnDecoyHit()
	if got := pm.OnLifeTokenHit(); got != LifeRestored {
		t.Fatalf("token outcome = %v", got)
	}
	st := pm.State()
	if st.Strikes != 1 || st.Score != 0 || st.LetterIndex != 0 {
		t.Errorf("after token: strikes %d score %d index %d", st.Strikes, st.Score, st.LetterIndex)
	}
}

func TestAdvanceLevelSpeedsUpToFloor(t *testing.T) {
	rules := testRules()
	pm := NewProgressManager(rules)
	picker := &fixedPicker{words: []types.Word{{Text: "DOG"}, {Text: "CAT"}}}
	if err := pm.BeginWord(picker); err != nil {
		t.Fatal(err)
	}

	if err := pm.AdvanceLevel(picker); err != nil {
		t.Fatal(err)
	}
	st := pm.State()
	if st.Level != 2 {
		t.Errorf("Level = %d, want 2", st.Level)
	}
	if st.Speed != 147*time.Millisecond {
		t.Errorf("Speed = %v, want 147ms", st.Speed)
	}
	if st.LetterIndex != 0 || st.Word.Text != "CAT" {
		t.Errorf("next word %q index %d", st.Word.Text, st.LetterIndex)
	}
	if _, ok := picker.seen[1]["DOG"]; !ok {
		t.Error("second pick did not exclude the first word")
	}

	for i := 0; i < 100; i++ {
		if err := pm.AdvanceLevel(picker); err != nil {
			t.Fatal(err)
		}
	}
	if pm.State().Speed != rules.MinSpeed {
		t.Errorf("Speed = %v, want floor %v", pm.State().Speed, rules.MinSpeed)
	}
}

func TestBeginWordRejectsBadWords(t *testing.T) {
	for _, w := range []string{"", "ab", "c4t", "cat"} {
		pm := NewProgressManager(testRules())
		err := pm.BeginWord(&fixedPicker{words: []types.Word{{Text: w}}})
		if !errors.Is(err, ErrBadWord) {
			t.Errorf("BeginWord(%q) err = %v, want ErrBadWord", w, err)
		}
	}

	pm := NewProgressManager(testRules())
	if err := pm.BeginWord(&fixedPicker{}); err == nil {
		t.Error("picker failure not propagated")
	}
}

func TestResetClearsHistory(t *testing.T) {
	pm := NewProgressManager(testRules())
	picker := &fixedPicker{words: []types.Word{{Text: "FOX"}}}
	_ = pm.BeginWord(picker)
	pm.OnTargetHit()
	pm.OnDecoyHit()

	pm.Reset()
	st := pm.State()
	if st.Score != 0 || st.Strikes != 0 || st.Level != 1 || st.Speed != 150*time.Millisecond {
		t.Errorf("state after reset: %+v", st)
	}
	if len(pm.History()) != 0 {
		t.Errorf("history not cleared: %v", pm.History())
	}
}
