// Package words supplies the animal names spelled during a session.
//
// The default list is embedded from animals.txt. A replacement list can be
// loaded from disk in the same format: one "WORD GLYPH" pair per line, with
// blank lines and lines starting with '#' ignored. Words must be uppercase
// A-Z and 3 to 9 letters long.
package words

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"spelling-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

//go:embed animals.txt
var embeddedAnimals string

var (
	ErrEmptyDataset = errors.New("words: dataset is empty")
	ErrInvalidWord  = errors.New("words: invalid word")
	ErrNoCandidate  = errors.New("words: no word fits the length limit")
)

// Difficulty maps a level range to the longest word it may draw
type Difficulty struct {
	MinLevel      int
	MaxLevel      int
	MaxWordLength int
}

// Difficulties is the level progression table
var Difficulties = []Difficulty{
	{MinLevel: 1, MaxLevel: 3, MaxWordLength: 3},
	{MinLevel: 4, MaxLevel: 6, MaxWordLength: 4},
	{MinLevel: 7, MaxLevel: 10, MaxWordLength: 5},
	{MinLevel: 11, MaxLevel: 15, MaxWordLength: 6},
	{MinLevel: 16, MaxLevel: 999, MaxWordLength: 9},
}

// MaxLengthForLevel returns the word length cap for level
func MaxLengthForLevel(level int) int {
	for _, d := range Difficulties {
		if level >= d.MinLevel && level <= d.MaxLevel {
			return d.MaxWordLength
		}
	}
	return types.MaxWordLength
}

// Default returns the embedded animal list
func Default() []types.Word {
	list, err := Parse(strings.NewReader(embeddedAnimals))
	if err != nil {
		panic(err)
	}
	return list
}

// Load reads a word list from path, or returns the embedded list when path is empty
func Load(path string) ([]types.Word, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open word list")
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return list, nil
}

// Parse reads "WORD GLYPH" lines. Words are upper-cased before validation.
func Parse(r io.Reader) ([]types.Word, error) {
	var out []types.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		w := types.Word{Text: strings.ToUpper(fields[0])}
		if len(fields) > 1 {
			w.Glyph = strings.Join(fields[1:], " ")
		}
		if !types.ValidWord(w.Text) {
			return nil, errors.Wrapf(ErrInvalidWord, "line %d: %q", line, fields[0])
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan word list")
	}
	if len(out) == 0 {
		return nil, ErrEmptyDataset
	}

	// Level 1 needs a short word or every game ends at start
	short := MaxLengthForLevel(1)
	for _, w := range out {
		if w.Len() <= short {
			return out, nil
		}
	}
	return nil, errors.Wrapf(ErrNoCandidate, "no word of %d letters or fewer", short)
}

// Provider draws words at random for successive rounds
type Provider struct {
	words []types.Word
	rng   *rand.Rand
}

func NewProvider(list []types.Word, rng *rand.Rand) *Provider {
	return &Provider{
		words: list,
		rng:   rng,
	}
}

// PickWord returns a random word no longer than maxLength that is not in
// excluding. When every fitting word is excluded the exclusion is ignored for
// this draw only; excluding is never modified.
func (p *Provider) PickWord(excluding map[string]struct{}, maxLength int) (types.Word, error) {
	if len(p.words) == 0 {
		return types.Word{}, ErrEmptyDataset
	}

	fits := make([]types.Word, 0, len(p.words))
	fresh := make([]types.Word, 0, len(p.words))
	for _, w := range p.words {
		if w.Len() > maxLength {
			continue
		}
		fits = append(fits, w)
		if _, used := excluding[w.Text]; !used {
			fresh = append(fresh, w)
		}
	}

	switch {
	case len(fresh) > 0:
		return fresh[p.rng.Intn(len(fresh))], nil
	case len(fits) > 0:
		return fits[p.rng.Intn(len(fits))], nil
	default:
		return types.Word{}, errors.Wrapf(ErrNoCandidate, "max length %d", maxLength)
	}
}

// Len returns the dataset size
func (p *Provider) Len() int {
	return len(p.words)
}
