package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	// Missing and not-owned are deliberately the same error so callers
	// can't probe for other users' occurrences.
	ErrOccurrenceNotFound = errors.New("occurrence not found")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrEmptyCatalog       = errors.New("challenge catalog is empty")

	ErrTerminalOccurrence = errors.New("occurrence is already completed or cancelled")
	ErrInvalidTimeSpent   = errors.New("time spent must be between 0 and 120 seconds")
	ErrInvalidResolution  = errors.New("resolution must be success or failed")
)
