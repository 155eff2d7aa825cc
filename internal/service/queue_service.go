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

// snoozeDuration is how far a postponed occurrence is pushed out.
const snoozeDuration = 2 * time.Minute

type QueueService struct {
	occRepo        repository.OccurrencesRepositoryI
	challengesRepo repository.ChallengesRepositoryI
	clock          clock.Clock
}

func NewQueueService(occRepo repository.OccurrencesRepositoryI, challengesRepo repository.ChallengesRepositoryI, clk clock.Clock) *QueueService {
	if occRepo == nil || challengesRepo == nil {
		log.Fatal("on queue service provided nil repos")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &QueueService{
		occRepo:        occRepo,
		challengesRepo: challengesRepo,
		clock:          clk,
	}
}

func (qs *QueueService) ListEligible(ctx context.Context, uid uuid.UUID) ([]*entity.ScheduledOccurrence, error) {
	occurrences, err := qs.occRepo.ListEligible(ctx, uid, qs.clock.Now())
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return occurrences, nil
}

func (qs *QueueService) Next(ctx context.Context, uid uuid.UUID) (*OccurrenceWithChallenge, error) {
	occurrences, err := qs.occRepo.ListEligible(ctx, uid, qs.clock.Now())
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if len(occurrences) == 0 {
		return nil, nil
	}
	head := occurrences[0]
	challenge, err := qs.challengesRepo.GetByID(ctx, head.ChallengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &OccurrenceWithChallenge{
		Occurrence: head,
		Challenge:  challenge,
	}, nil
}

func (qs *QueueService) Postpone(ctx context.Context, id, uid uuid.UUID) (*entity.ScheduledOccurrence, error) {
	occ, err := qs.occRepo.GetByIDAndUser(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOccurrenceNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if occ.Status.Terminal() {
		return nil, errorvalues.ErrTerminalOccurrence
	}
	until := qs.clock.Now().Add(snoozeDuration)
	if err = qs.occRepo.Snooze(ctx, id, until); err != nil {
		if errors.Is(err, errorvalues.ErrOccurrenceNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	occ.Status = entity.OccurrenceSnoozed
	occ.SnoozedUntil = &until
	occ.ScheduledAt = until
	return occ, nil
}

func (qs *QueueService) Cancel(ctx context.Context, id, uid uuid.UUID) error {
	occ, err := qs.occRepo.GetByIDAndUser(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOccurrenceNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if occ.Status.Terminal() {
		return errorvalues.ErrTerminalOccurrence
	}
	if err = qs.occRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrOccurrenceNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
