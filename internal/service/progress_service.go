package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/clock"
	"github.com/limbo/momentum/pkg/entity"
)

const maxTimeSpentSeconds = 120

// ProgressService is the ledger: the only writer of user_progress and
// challenge_history.
type ProgressService struct {
	progressRepo   repository.ProgressRepositoryI
	challengesRepo repository.ChallengesRepositoryI
	clock          clock.Clock
}

func NewProgressService(progressRepo repository.ProgressRepositoryI, challengesRepo repository.ChallengesRepositoryI, clk clock.Clock) *ProgressService {
	if progressRepo == nil || challengesRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &ProgressService{
		progressRepo:   progressRepo,
		challengesRepo: challengesRepo,
		clock:          clk,
	}
}

func (ps *ProgressService) RecordCompletion(ctx context.Context, uid, challengeID uuid.UUID, timeSpentSeconds int, status entity.Resolution) (*CompletionRecord, error) {
	challenge, err := ps.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if timeSpentSeconds < 0 || timeSpentSeconds > maxTimeSpentSeconds {
		return nil, errorvalues.ErrInvalidTimeSpent
	}
	if !status.Valid() {
		return nil, errorvalues.ErrInvalidResolution
	}

	pointsEarned := 0
	if status == entity.ResolutionSuccess {
		pointsEarned = challenge.Points
	}
	now := ps.clock.Now()
	entry := &entity.ChallengeHistoryEntry{
		ID:               uuid.New(),
		UserID:           uid,
		ChallengeID:      challengeID,
		CompletedAt:      now,
		TimeSpentSeconds: timeSpentSeconds,
		PointsEarned:     pointsEarned,
		Status:           status,
	}

	today := clock.DateOnly(now)
	progress, err := ps.progressRepo.RecordCompletion(ctx, entry, func(p *entity.UserProgress) {
		advanceStreak(p, today)
		p.TotalCompleted++
		p.TotalPoints += pointsEarned
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &CompletionRecord{
		Entry:        entry,
		PointsEarned: pointsEarned,
		Progress:     progress,
	}, nil
}

func (ps *ProgressService) GetProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	progress, err := ps.progressRepo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if progress == nil {
		// Lazy all-zero snapshot; the row itself is created on first write.
		return &entity.UserProgress{UserID: uid}, nil
	}
	return progress, nil
}

// advanceStreak applies the calendar-date streak rules to p for a completion
// on `today` (date-only, UTC). A failed resolution advances the streak too:
// the streak tracks "did a challenge today", not "succeeded today".
func advanceStreak(p *entity.UserProgress, today time.Time) {
	switch {
	case p.LastCompletedDate == nil:
		p.CurrentStreak = 1
	case p.LastCompletedDate.Equal(today):
		// Second completion the same day: streak untouched.
		return
	case p.LastCompletedDate.Equal(today.AddDate(0, 0, -1)):
		p.CurrentStreak++
	default:
		// Gap of two or more days. LongestStreak keeps the old maximum.
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastCompletedDate = &today
}
