package manager

import (
	"testing"
	"time"
)

func TestStatsManager(t *testing.T) {
	s := NewStatsManager()
	if s.Average() != 0 || s.Best() != 0 {
		t.Fatal("empty stats not zero")
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Record(40, 1, start, start.Add(time.Minute))
	s.Record(100, 2, start, start.Add(2*time.Minute))

	if s.Games() != 2 || s.Best() != 100 || s.Average() != 70 {
		t.Errorf("games %d best %d avg %v", s.Games(), s.Best(), s.Average())
	}
	if s.Median() != 70 {
		t.Errorf("median = %v", s.Median())
	}
	s.Record(10, 0, start, start)
	if s.Median() != 40 {
		t.Errorf("odd median = %v", s.Median())
	}
	if s.Recent()[1].Duration() != 2*time.Minute {
		t.Errorf("duration = %v", s.Recent()[1].Duration())
	}

	for i := 0; i < maxRecords+5; i++ {
		s.Record(1, 0, start, start)
	}
	if len(s.Recent()) != maxRecords {
		t.Errorf("history length %d, want %d", len(s.Recent()), maxRecords)
	}
	if s.Best() != 100 {
		t.Errorf("best lost after trimming: %d", s.Best())
	}
	if s.Median() != 1 {
		t.Errorf("median over retained history = %v", s.Median())
	}
}
