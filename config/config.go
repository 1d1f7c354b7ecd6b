// Package config holds the tunable game constants and loads overrides from
// an optional .env file and SNAKE_* environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"spelling-snake/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrInvalid marks a configuration that cannot produce a playable game
var ErrInvalid = errors.New("invalid configuration")

const envPrefix = "SNAKE_"

// A shorter snake can reverse into its own vacating tail and survive
const minSnakeLength = 3

type Config struct {
	GridWidth  int
	GridHeight int
	CellSize   int

	InitialLength  int
	InitialSpeed   time.Duration
	SpeedDecrement time.Duration
	MinSpeed       time.Duration

	DecoyCount          int
	MaxStrikes          int
	LetterReward        int
	WordBonusPerLetter  int
	HeadExclusionRadius int
	ExclusionMetric     string
	LifeTokenChance     float64
	SpawnAttempts       int

	WrapMode     bool
	GrowOnTarget bool

	CelebrationDelay time.Duration
	FindingDelay     time.Duration

	Seed      uint64
	WordsFile string
	Sound     bool
}

// Default returns the stock game tuning
func Default() Config {
	return Config{
		GridWidth:           22,
		GridHeight:          16,
		CellSize:            28,
		InitialLength:       3,
		InitialSpeed:        150 * time.Millisecond,
		SpeedDecrement:      3 * time.Millisecond,
		MinSpeed:            80 * time.Millisecond,
		DecoyCount:          5,
		MaxStrikes:          3,
		LetterReward:        10,
		WordBonusPerLetter:  10,
		HeadExclusionRadius: 2,
		ExclusionMetric:     "chebyshev",
		LifeTokenChance:     0.30,
		SpawnAttempts:       100,
		WrapMode:            false,
		GrowOnTarget:        false,
		CelebrationDelay:    2500 * time.Millisecond,
		FindingDelay:        800 * time.Millisecond,
		Seed:                0,
		WordsFile:           "",
		Sound:               true,
	}
}

// Load returns Default overlaid with values from envFile (skipped when
// missing) and then from the process environment. Variables already set in
// the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "load %s", envFile)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := map[string]*int{
		"GRID_WIDTH":            &c.GridWidth,
		"GRID_HEIGHT":           &c.GridHeight,
		"CELL_SIZE":             &c.CellSize,
		"INITIAL_LENGTH":        &c.InitialLength,
		"DECOY_COUNT":           &c.DecoyCount,
		"MAX_STRIKES":           &c.MaxStrikes,
		"LETTER_REWARD":         &c.LetterReward,
		"WORD_BONUS_PER_LETTER": &c.WordBonusPerLetter,
		"HEAD_EXCLUSION_RADIUS": &c.HeadExclusionRadius,
		"SPAWN_ATTEMPTS":        &c.SpawnAttempts,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", envPrefix, key)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"INITIAL_SPEED":     &c.InitialSpeed,
		"SPEED_DECREMENT":   &c.SpeedDecrement,
		"MIN_SPEED":         &c.MinSpeed,
		"CELEBRATION_DELAY": &c.CelebrationDelay,
		"FINDING_DELAY":     &c.FindingDelay,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok {
			d, err := ParseDuration(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", envPrefix, key)
			}
			*dst = d
		}
	}

	bools := map[string]*bool{
		"WRAP":           &c.WrapMode,
		"GROW_ON_TARGET": &c.GrowOnTarget,
		"SOUND":          &c.Sound,
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", envPrefix, key)
			}
			*dst = b
		}
	}

	if v, ok := lookup("LIFE_TOKEN_CHANCE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, envPrefix+"LIFE_TOKEN_CHANCE")
		}
		c.LifeTokenChance = f
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, envPrefix+"SEED")
		}
		c.Seed = n
	}
	if v, ok := lookup("EXCLUSION_METRIC"); ok {
		c.ExclusionMetric = strings.ToLower(v)
	}
	if v, ok := lookup("WORDS_FILE"); ok {
		c.WordsFile = v
	}
	return nil
}

// ParseDuration accepts Go duration strings ("150ms") or bare milliseconds ("150")
func ParseDuration(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "duration %q", v)
	}
	return d, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Validate rejects values that would make the board unplayable
func (c Config) Validate() error {
	switch {
	case c.GridWidth < c.InitialLength+4 || c.GridHeight < 3:
		return errors.Wrapf(ErrInvalid, "grid %dx%d too small for a length %d snake", c.GridWidth, c.GridHeight, c.InitialLength)
	case c.InitialLength < minSnakeLength:
		return errors.Wrapf(ErrInvalid, "initial length %d", c.InitialLength)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalid, "cell size %d", c.CellSize)
	case c.MinSpeed <= 0 || c.InitialSpeed < c.MinSpeed:
		return errors.Wrapf(ErrInvalid, "speed %v with floor %v", c.InitialSpeed, c.MinSpeed)
	case c.SpeedDecrement < 0:
		return errors.Wrapf(ErrInvalid, "speed decrement %v", c.SpeedDecrement)
	case c.DecoyCount < 0:
		return errors.Wrapf(ErrInvalid, "decoy count %d", c.DecoyCount)
	case c.MaxStrikes < 1:
		return errors.Wrapf(ErrInvalid, "max strikes %d", c.MaxStrikes)
	case c.LetterReward < 0 || c.WordBonusPerLetter < 0:
		return errors.Wrapf(ErrInvalid, "negative reward")
	case c.HeadExclusionRadius < 0:
		return errors.Wrapf(ErrInvalid, "exclusion radius %d", c.HeadExclusionRadius)
	case c.LifeTokenChance < 0 || c.LifeTokenChance > 1:
		return errors.Wrapf(ErrInvalid, "life token chance %v", c.LifeTokenChance)
	case c.CelebrationDelay < 0 || c.FindingDelay < 0:
		return errors.Wrapf(ErrInvalid, "negative transition delay")
	}
	if _, err := ParseMetric(c.ExclusionMetric); err != nil {
		return err
	}
	return nil
}

// Metric returns the parsed exclusion metric, Chebyshev when unrecognised
func (c Config) Metric() types.Metric {
	m, err := ParseMetric(c.ExclusionMetric)
	if err != nil {
		return types.Chebyshev
	}
	return m
}

// Wrap returns the configured boundary policy
func (c Config) Wrap() types.WrapMode {
	if c.WrapMode {
		return types.Wrap
	}
	return types.Solid
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

func ParseMetric(s string) (types.Metric, error) {
	switch strings.ToLower(s) {
	case "", "chebyshev", "square":
		return types.Chebyshev, nil
	case "manhattan", "diamond":
		return types.Manhattan, nil
	}
	return types.Chebyshev, errors.Wrapf(ErrInvalid, "exclusion metric %q", s)
}
