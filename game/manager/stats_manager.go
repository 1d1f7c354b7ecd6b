package manager

import (
	"sort"
	"sync"
	"time"
)

// maxRecords bounds the in-memory score history
const maxRecords = 50

// GameRecord is one finished game of the current process
type GameRecord struct {
	StartTime      time.Time
	EndTime        time.Time
	Score          int
	AnimalsSpelled int
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps per-process results. Nothing is written to disk.
type StatsManager struct {
	mutex     sync.RWMutex
	games     []GameRecord
	played    int
	highScore int
	total     int
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		games: make([]GameRecord, 0, maxRecords),
	}
}

// Record adds a finished game
func (s *StatsManager) Record(score, animals int, start, end time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.games) >= maxRecords {
		s.games = s.games[1:]
	}
	s.games = append(s.games, GameRecord{
		StartTime:      start,
		EndTime:        end,
		Score:          score,
		AnimalsSpelled: animals,
	})
	s.played++
	s.total += score
	if score > s.highScore {
		s.highScore = score
	}
}

func (s *StatsManager) Games() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.played
}

func (s *StatsManager) Best() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.highScore
}

// Average is the mean score over every recorded game
func (s *StatsManager) Average() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.played == 0 {
		return 0
	}
	return float64(s.total) / float64(s.played)
}

// Median is taken over the retained history only
func (s *StatsManager) Median() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	scores := make([]int, len(s.games))
	for i, g := range s.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// Recent returns a copy of the retained history, oldest first
func (s *StatsManager) Recent() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}
