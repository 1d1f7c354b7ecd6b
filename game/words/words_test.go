package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spelling-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func TestDefaultDatasetIsValid(t *testing.T) {
	list := Default()
	if len(list) < 50 {
		t.Fatalf("embedded list has %d words", len(list))
	}
	seen := make(map[string]bool)
	for _, w := range list {
		if !types.ValidWord(w.Text) {
			t.Errorf("invalid embedded word %q", w.Text)
		}
		if w.Glyph == "" {
			t.Errorf("%s has no glyph", w.Text)
		}
		if seen[w.Text] {
			t.Errorf("duplicate word %s", w.Text)
		}
		seen[w.Text] = true
	}
}

func TestPickWordRespectsLengthAndExclusion(t *testing.T) {
	p := NewProvider(Default(), rand.New(rand.NewSource(5)))
	used := make(map[string]struct{})

	for i := 0; i < 10; i++ {
		w, err := p.PickWord(used, 3)
		if err != nil {
			t.Fatalf("PickWord: %v", err)
		}
		if w.Len() > 3 {
			t.Fatalf("picked %s longer than 3", w.Text)
		}
		if _, dup := used[w.Text]; dup {
			t.Fatalf("picked %s twice while unused words remained", w.Text)
		}
		used[w.Text] = struct{}{}
	}

	// All ten 3-letter animals are used: the draw repeats without touching the set
	before := len(used)
	w, err := p.PickWord(used, 3)
	if err != nil {
		t.Fatalf("PickWord after exhaustion: %v", err)
	}
	if w.Len() > 3 {
		t.Errorf("fallback picked %s", w.Text)
	}
	if len(used) != before {
		t.Error("PickWord mutated the exclusion set")
	}
}

func TestPickWordErrors(t *testing.T) {
	empty := NewProvider(nil, rand.New(rand.NewSource(1)))
	if _, err := empty.PickWord(nil, 9); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty provider err = %v", err)
	}

	long := NewProvider([]types.Word{{Text: "ELEPHANT"}}, rand.New(rand.NewSource(1)))
	if _, err := long.PickWord(nil, 3); !errors.Is(err, ErrNoCandidate) {
		t.Errorf("no candidate err = %v", err)
	}
}

func TestMaxLengthForLevel(t *testing.T) {
	cases := map[int]int{1: 3, 3: 3, 4: 4, 6: 4, 7: 5, 10: 5, 11: 6, 15: 6, 16: 9, 500: 9, 5000: 9}
	for level, want := range cases {
		if got := MaxLengthForLevel(level); got != want {
			t.Errorf("MaxLengthForLevel(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader("# comment\n\nowl 🦉\nYAK\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(list) != 2 || list[0].Text != "OWL" || list[0].Glyph != "🦉" || list[1].Glyph != "" {
		t.Errorf("parsed %+v", list)
	}

	if _, err := Parse(strings.NewReader("OK\nB4D 🐛\n")); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("invalid line err = %v", err)
	}
	if _, err := Parse(strings.NewReader("# nothing\n")); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty list err = %v", err)
	}
	if _, err := Parse(strings.NewReader("HORSE\nTIGER\nZEBRA\n")); !errors.Is(err, ErrNoCandidate) {
		t.Errorf("list without a level 1 word err = %v", err)
	}
}

func TestLoad(t *testing.T) {
	list, err := Load("")
	if err != nil || len(list) != len(Default()) {
		t.Fatalf("Load(\"\") = %d words, %v", len(list), err)
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("EMU\nGNU\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	list, err = Load(path)
	if err != nil || len(list) != 2 {
		t.Fatalf("Load(file) = %v, %v", list, err)
	}

	long := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(long, []byte("HORSE\nTIGER\nZEBRA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(long); !errors.Is(err, ErrNoCandidate) {
		t.Errorf("Load(long words) err = %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing file loaded")
	}
}
