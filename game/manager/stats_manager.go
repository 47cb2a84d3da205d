package manager

import (
	"sort"
	"time"
)

// MaxRoundRecords is how many finished rounds are kept for the history graph
const MaxRoundRecords = 200

// RoundRecord describes one finished round. Times are simulation time.
type RoundRecord struct {
	ID       string
	Score    uint
	Start    time.Duration
	End      time.Duration
	Cause    string
	TailSize int
}

// Duration returns how long the round lasted
func (r RoundRecord) Duration() time.Duration {
	return r.End - r.Start
}

// StatsManager keeps in-memory statistics for the current process.
// Nothing is written to disk.
type StatsManager struct {
	records       []RoundRecord
	gamesPlayed   int
	totalScore    uint
	totalDuration time.Duration
	bestScore     uint
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		records: make([]RoundRecord, 0, MaxRoundRecords),
	}
}

// AddRound records a finished round
func (s *StatsManager) AddRound(r RoundRecord) {
	if len(s.records) >= MaxRoundRecords {
		s.records = append(s.records[:0], s.records[1:]...)
	}
	s.records = append(s.records, r)

	s.gamesPlayed++
	s.totalScore += r.Score
	s.totalDuration += r.Duration()
	if r.Score > s.bestScore {
		s.bestScore = r.Score
	}
}

// GetGamesPlayed returns the number of finished rounds
func (s *StatsManager) GetGamesPlayed() int {
	return s.gamesPlayed
}

// GetMaxScore returns the best score of the session
func (s *StatsManager) GetMaxScore() uint {
	return s.bestScore
}

// GetAverageScore returns the mean score over every finished round
func (s *StatsManager) GetAverageScore() float64 {
	if s.gamesPlayed == 0 {
		return 0
	}
	return float64(s.totalScore) / float64(s.gamesPlayed)
}

// GetAverageDuration returns the mean round length
func (s *StatsManager) GetAverageDuration() time.Duration {
	if s.gamesPlayed == 0 {
		return 0
	}
	return s.totalDuration / time.Duration(s.gamesPlayed)
}

// GetMedianScore returns the median over the retained records
func (s *StatsManager) GetMedianScore() float64 {
	if len(s.records) == 0 {
		return 0
	}
	scores := make([]float64, len(s.records))
	for i, r := range s.records {
		scores[i] = float64(r.Score)
	}
	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		return (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	}
	return scores[len(scores)/2]
}

// GetRecords returns a copy of the retained records, oldest first
func (s *StatsManager) GetRecords() []RoundRecord {
	out := make([]RoundRecord, len(s.records))
	copy(out, s.records)
	return out
}
