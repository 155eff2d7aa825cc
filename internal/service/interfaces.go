package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/momentum/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

// OccurrenceWithChallenge joins an occurrence with its catalog definition
// for presentation.
type OccurrenceWithChallenge struct {
	Occurrence *entity.ScheduledOccurrence `json:"occurrence"`
	Challenge  *entity.Challenge           `json:"challenge"`
}

// CompletionRecord is the ledger's answer to one recorded completion.
type CompletionRecord struct {
	Entry        *entity.ChallengeHistoryEntry `json:"entry"`
	PointsEarned int                           `json:"points_earned"`
	Progress     *entity.UserProgress          `json:"progress"`
}

// CompletionResult is the full pipeline answer: ledger record plus any
// achievements that unlocked on this completion.
type CompletionResult struct {
	Entry         *entity.ChallengeHistoryEntry `json:"entry"`
	PointsEarned  int                           `json:"points_earned"`
	Progress      *entity.UserProgress          `json:"progress"`
	NewlyUnlocked []*entity.Achievement         `json:"newly_unlocked"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type QueueServiceI interface {
	// Lists every occurrence of uid selectable right now, earliest-due first
	ListEligible(ctx context.Context, uid uuid.UUID) ([]*entity.ScheduledOccurrence, error)
	// Returns the next-eligible occurrence joined with its challenge, or
	// nil when the queue is empty
	Next(ctx context.Context, uid uuid.UUID) (*OccurrenceWithChallenge, error)
	// Snoozes the occurrence for two minutes and moves it to the back of
	// the eligibility ordering
	Postpone(ctx context.Context, id, uid uuid.UUID) (*entity.ScheduledOccurrence, error)
	// Cancels the occurrence permanently
	Cancel(ctx context.Context, id, uid uuid.UUID) error
}

type ProgressServiceI interface {
	// Records one resolved occurrence in the ledger: immutable history
	// entry plus streak/points arithmetic on the locked progress row
	RecordCompletion(ctx context.Context, uid, challengeID uuid.UUID, timeSpentSeconds int, status entity.Resolution) (*CompletionRecord, error)
	// Returns the ledger snapshot, all-zero when nothing is recorded yet
	GetProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
}

type AchievementServiceI interface {
	// Computes progress-toward-unlock for every achievement definition
	Evaluate(ctx context.Context, uid uuid.UUID) ([]*entity.AchievementProgress, error)
	// Re-evaluates and persists newly satisfied unlocks. Idempotent:
	// repeated calls after one qualifying completion return nothing new
	CheckAndUnlock(ctx context.Context, uid uuid.UUID) ([]*entity.Achievement, error)
}

type CompletionServiceI interface {
	// Drives one resolved occurrence through the whole pipeline: ledger
	// write, queue transition, achievement check
	CompleteOccurrence(ctx context.Context, occurrenceID, uid uuid.UUID, timeSpentSeconds int, status entity.Resolution) (*CompletionResult, error)
}
