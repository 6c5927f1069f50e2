package model

import (
	"fmt"
	"time"
)

// ExamResult is the outcome of one exam run.
type ExamResult struct {
	TotalScore int           `json:"total_score"`
	MaxScore   int           `json:"max_score"`
	TimeTaken  time.Duration `json:"time_taken"`
}

// NewExamResult creates an ExamResult.
func NewExamResult(totalScore, maxScore int, timeTaken time.Duration) ExamResult {
	return ExamResult{TotalScore: totalScore, MaxScore: maxScore, TimeTaken: timeTaken}
}

// Percentage returns the score as a percentage of MaxScore, or 0 when no
// marks were available.
func (r ExamResult) Percentage() float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.MaxScore) * 100
}

func (r ExamResult) String() string {
	return fmt.Sprintf("Score: %d/%d (%.0f%%)\nTime taken: %s",
		r.TotalScore, r.MaxScore, r.Percentage(), r.TimeTaken.Round(time.Second))
}
