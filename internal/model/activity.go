package model

import "time"

// Activity is one logged practice session. Records are immutable once submitted.
type Activity struct {
	ID        string    `json:"id"`
	LearnerID string    `json:"learnerId"`
	Topic     string    `json:"topic"`
	Attempts  int       `json:"attempts"`
	Correct   int       `json:"correct"`
	TimeSpent int       `json:"timeSpent"` // minutes
	Timestamp time.Time `json:"timestamp"`
}

// SuccessRate returns correct/attempts, 0 for an empty record.
func (a Activity) SuccessRate() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempts)
}
