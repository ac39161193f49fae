package util

import "errors"

var (
	ErrLearnerNotFound  = errors.New("learner not found")
	ErrTestAlreadyTaken = errors.New("daily test already completed for today")
	ErrValidation       = errors.New("invalid submission")
)
