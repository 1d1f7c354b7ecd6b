package game

import (
	"time"

	"spelling-snake/config"
	"spelling-snake/game/entity"
	"spelling-snake/game/manager"
	"spelling-snake/game/types"
	"spelling-snake/game/words"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Session owns one game: the snake, the live letters and the progress
// counters. All methods are synchronous and must be called from one
// goroutine; the Controller serializes them.
type Session struct {
	ID string

	cfg   config.Config
	grid  types.Grid
	mode  types.WrapMode
	wrap  types.WrapMode // applied by the next Start
	phase Phase
	round RoundState

	snake   *entity.Snake
	letters []types.Letter
	input   *manager.InputBuffer

	collisionMgr *manager.CollisionManager
	spawnMgr     *manager.SpawnManager
	progress     *manager.ProgressManager
	picker       manager.WordPicker
	rng          *rand.Rand

	steps     int
	lastEvent Event
	lastCause Cause
	logger    zerolog.Logger
}

// NewSession builds an idle session. cfg must already be validated.
func NewSession(cfg config.Config, picker manager.WordPicker, rng *rand.Rand) *Session {
	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)

	s := &Session{
		cfg:          cfg,
		grid:         grid,
		mode:         cfg.Wrap(),
		wrap:         cfg.Wrap(),
		phase:        Idle,
		input:        manager.NewInputBuffer(types.Right),
		collisionMgr: collisionMgr,
		spawnMgr:     manager.NewSpawnManager(collisionMgr, cfg.SpawnAttempts),
		progress: manager.NewProgressManager(manager.ProgressRules{
			MaxStrikes:         cfg.MaxStrikes,
			LetterReward:       cfg.LetterReward,
			WordBonusPerLetter: cfg.WordBonusPerLetter,
			InitialSpeed:       cfg.InitialSpeed,
			SpeedDecrement:     cfg.SpeedDecrement,
			MinSpeed:           cfg.MinSpeed,
			LengthForLevel:     words.MaxLengthForLevel,
		}),
		picker: picker,
		rng:    rng,
		logger: log.Logger,
	}
	s.snake = s.spawnSnake()
	return s
}

func (s *Session) spawnSnake() *entity.Snake {
	head := types.Cell{X: s.cfg.InitialLength + 2, Y: s.grid.Height / 2}
	return entity.NewSnake(head, s.cfg.InitialLength, types.Right)
}

// Start begins a fresh game: new id, cleared history, new snake and the
// first word. A dataset that yields no usable word ends it immediately
// with ConfigurationError.
func (s *Session) Start() StepResult {
	s.ID = uuid.New().String()
	s.logger = log.With().Str("session", s.ID).Logger()

	s.mode = s.wrap
	s.progress.Reset()
	s.snake = s.spawnSnake()
	s.input.Reset(s.snake.Direction)
	s.letters = nil
	s.steps = 0
	s.round = Playing
	s.phase = Active

	if err := s.progress.BeginWord(s.picker); err != nil {
		s.logger.Error().Err(err).Msg("cannot start round")
		return s.end(ConfigurationError)
	}

	s.placeBoard()
	st := s.progress.State()
	s.logger.Info().
		Str("word", st.Word.Text).
		Str("wrap", s.mode.String()).
		Msg("session started")
	return s.emit(Started, NoCause)
}

// Restart discards the current game, whatever its phase, and starts anew
func (s *Session) Restart() StepResult {
	if s.phase == Active {
		s.logger.Info().Int("score", s.progress.State().Score).Msg("session abandoned")
	}
	return s.Start()
}

// ReturnToMenu drops back to Idle. The final board stays visible in snapshots.
func (s *Session) ReturnToMenu() {
	s.phase = Idle
	s.round = Playing
	s.letters = nil
	s.lastEvent = NoEvent
	s.lastCause = NoCause
	s.mode = s.wrap
}

// SetWrapMode chooses the boundary policy. It takes effect at the next
// Start; an idle session also shows it right away.
func (s *Session) SetWrapMode(wrap bool) {
	s.wrap = types.Solid
	if wrap {
		s.wrap = types.Wrap
	}
	if s.phase == Idle {
		s.mode = s.wrap
	}
}

// WrapMode is the preference the next Start will apply
func (s *Session) WrapMode() types.WrapMode {
	return s.wrap
}

// Push queues a direction change. Ignored outside an active game.
func (s *Session) Push(d types.Direction) bool {
	if s.phase != Active {
		return false
	}
	return s.input.Push(d)
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Round() RoundState {
	return s.round
}

// Interval is the current tick period
func (s *Session) Interval() time.Duration {
	return s.progress.State().Speed
}

// Tick advances the simulation one step. Outside Active it does nothing
// and reports NoEvent.
func (s *Session) Tick() StepResult {
	if s.phase != Active {
		return StepResult{Event: NoEvent, Snapshot: s.Snapshot()}
	}

	dir, _ := s.input.Pop()
	s.snake.Direction = dir

	// Growth must be known before the self test since a growing snake keeps its tail
	idx := -1
	if next, ok := s.grid.ResolveMove(s.snake.GetHead(), dir, s.mode); ok {
		idx = s.collisionMgr.CheckLetterCollision(next, s.letters)
	}
	grow := s.cfg.GrowOnTarget && idx >= 0 && s.letters[idx].Kind == types.Target

	next, collision := s.collisionMgr.CheckMove(s.snake, dir, s.mode, grow)
	switch collision {
	case manager.WallCollision:
		return s.end(Wall)
	case manager.SelfCollision:
		return s.end(SelfCollision)
	}

	s.snake.Advance(next, grow)
	s.steps++

	if idx < 0 {
		s.progress.OnMove()
		s.ensureTarget()
		return s.emit(Moved, NoCause)
	}

	letter := s.letters[idx]
	switch letter.Kind {
	case types.Target:
		switch s.progress.OnTargetHit() {
		case manager.WordComplete:
			s.letters = nil
			s.round = Celebrating
			st := s.progress.State()
			s.logger.Info().Str("word", st.Word.Text).Int("score", st.Score).Msg("word complete")
			return s.emit(WordComplete, NoCause)
		default:
			s.placeBoard()
			return s.emit(LetterAdvanced, NoCause)
		}

	case types.Decoy:
		// Decoys stay on the board until the next respawn
		if s.progress.OnDecoyHit() == manager.Exhausted {
			return s.end(Strikes)
		}
		s.logger.Debug().Str("letter", string(letter.Char)).Int("strikes", s.progress.State().Strikes).Msg("decoy hit")
		return s.emit(DecoyHit, NoCause)

	default:
		s.removeLetter(idx)
		s.progress.OnLifeTokenHit()
		return s.emit(LifeRestored, NoCause)
	}
}

// AdvanceLevel ends the celebration: level and speed step up and the next
// word is chosen. The board stays empty until SpawnLetters.
func (s *Session) AdvanceLevel() StepResult {
	if s.phase != Active || s.round != Celebrating {
		return StepResult{Event: NoEvent, Snapshot: s.Snapshot()}
	}
	if err := s.progress.AdvanceLevel(s.picker); err != nil {
		s.logger.Error().Err(err).Msg("cannot pick next word")
		return s.end(ConfigurationError)
	}
	s.round = Finding
	st := s.progress.State()
	s.logger.Info().
		Int("level", st.Level).
		Dur("speed", st.Speed).
		Str("word", st.Word.Text).
		Msg("level advanced")
	return s.emit(RoundStarted, NoCause)
}

// SpawnLetters lays out the board for the word chosen by AdvanceLevel
func (s *Session) SpawnLetters() StepResult {
	if s.phase != Active || s.round != Finding {
		return StepResult{Event: NoEvent, Snapshot: s.Snapshot()}
	}
	s.round = Playing
	s.placeBoard()
	return s.emit(LettersSpawned, NoCause)
}

// placeBoard replaces every live letter with a fresh target, decoys and
// possibly a life token
func (s *Session) placeBoard() {
	st := s.progress.State()
	res := s.spawnMgr.Plan(manager.SpawnRequest{
		Occupied:         s.occupied(),
		Head:             s.snake.GetHead(),
		TargetChar:       s.progress.TargetChar(),
		DecoyCount:       s.cfg.DecoyCount,
		IncludeLifeToken: manager.OfferLifeToken(st.Strikes, s.cfg.LifeTokenChance, s.rng),
		ExclusionRadius:  s.cfg.HeadExclusionRadius,
		Metric:           s.cfg.Metric(),
		Mode:             s.mode,
	}, s.rng)
	s.letters = res.Letters
	if res.Omitted > 0 {
		s.logger.Debug().Int("omitted", res.Omitted).Msg("board placed with fewer letters")
	}
}

// ensureTarget retries the target alone when a crowded board lost it
func (s *Session) ensureTarget() {
	if s.round != Playing || s.progress.TargetChar() == 0 {
		return
	}
	for _, l := range s.letters {
		if l.Kind == types.Target {
			return
		}
	}
	occupied := s.occupied()
	for _, l := range s.letters {
		occupied[l.Cell] = struct{}{}
	}
	res := s.spawnMgr.Plan(manager.SpawnRequest{
		Occupied:        occupied,
		Head:            s.snake.GetHead(),
		TargetChar:      s.progress.TargetChar(),
		ExclusionRadius: s.cfg.HeadExclusionRadius,
		Metric:          s.cfg.Metric(),
		Mode:            s.mode,
	}, s.rng)
	s.letters = append(s.letters, res.Letters...)
}

func (s *Session) occupied() map[types.Cell]struct{} {
	occ := make(map[types.Cell]struct{}, s.snake.Len())
	for _, c := range s.snake.Body {
		occ[c] = struct{}{}
	}
	return occ
}

func (s *Session) removeLetter(i int) {
	s.letters = append(s.letters[:i:i], s.letters[i+1:]...)
}

func (s *Session) end(cause Cause) StepResult {
	s.phase = Terminating
	s.round = Playing
	st := s.progress.State()
	s.logger.Info().
		Str("cause", cause.String()).
		Int("score", st.Score).
		Int("level", st.Level).
		Int("animals", st.AnimalsSpelled).
		Msg("game over")
	return s.emit(GameOver, cause)
}

func (s *Session) emit(ev Event, cause Cause) StepResult {
	s.lastEvent = ev
	s.lastCause = cause
	return StepResult{Event: ev, Cause: cause, Snapshot: s.Snapshot()}
}

// Snapshot copies the current state for presentation
func (s *Session) Snapshot() Snapshot {
	st := s.progress.State()
	letters := make([]types.Letter, len(s.letters))
	copy(letters, s.letters)

	return Snapshot{
		SessionID:   s.ID,
		Phase:       s.phase,
		Round:       s.round,
		Event:       s.lastEvent,
		Cause:       s.lastCause,
		Grid:        s.grid,
		Wrap:        s.mode,
		Snake:       s.snake.Cells(),
		Direction:   s.snake.Direction,
		Letters:     letters,
		Word:        st.Word,
		LetterIndex: st.LetterIndex,
		Score:       st.Score,
		Level:       st.Level,
		Strikes:     st.Strikes,
		MaxStrikes:  s.cfg.MaxStrikes,
		Speed:       st.Speed,
		Animals:     st.AnimalsSpelled,
		Steps:       s.steps,
	}
}
