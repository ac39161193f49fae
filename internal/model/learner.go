package model

import (
	"time"

	"github.com/google/uuid"
)

type LearnerRole string

const (
	Student LearnerRole = "student"
	Trainer LearnerRole = "trainer"
)

type Learner struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Role      LearnerRole `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func GenerateUUID() string {
	return uuid.New().String()
}
