package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

// CompletionService drives a resolved occurrence through the whole
// pipeline. The history/points write is the primary guarantee; the
// achievement check is best-effort and never fails the call.
type CompletionService struct {
	occRepo      repository.OccurrencesRepositoryI
	ledger       ProgressServiceI
	achievements AchievementServiceI
}

func NewCompletionService(occRepo repository.OccurrencesRepositoryI, ledger ProgressServiceI, achievements AchievementServiceI) *CompletionService {
	if occRepo == nil || ledger == nil || achievements == nil {
		log.Fatal("on completion service provided nil dependencies")
	}
	return &CompletionService{
		occRepo:      occRepo,
		ledger:       ledger,
		achievements: achievements,
	}
}

func (cs *CompletionService) CompleteOccurrence(ctx context.Context, occurrenceID, uid uuid.UUID, timeSpentSeconds int, status entity.Resolution) (*CompletionResult, error) {
	occ, err := cs.occRepo.GetByIDAndUser(ctx, occurrenceID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOccurrenceNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if occ.Status.Terminal() {
		return nil, errorvalues.ErrTerminalOccurrence
	}

	record, err := cs.ledger.RecordCompletion(ctx, uid, occ.ChallengeID, timeSpentSeconds, status)
	if err != nil {
		return nil, err
	}

	// The transition itself is idempotent; retries after this point can
	// repeat it without error.
	if err = cs.occRepo.MarkCompleted(ctx, occurrenceID); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	newlyUnlocked, err := cs.achievements.CheckAndUnlock(ctx, uid)
	if err != nil {
		// The ledger write already happened and must not be rolled back
		// by a secondary subsystem.
		slog.Error("achievement check failed after completion",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
		newlyUnlocked = nil
	}

	return &CompletionResult{
		Entry:         record.Entry,
		PointsEarned:  record.PointsEarned,
		Progress:      record.Progress,
		NewlyUnlocked: newlyUnlocked,
	}, nil
}
