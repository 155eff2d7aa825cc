package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/clock"
	"github.com/limbo/momentum/pkg/entity"
)

// AchievementService evaluates achievement progress from the ledger plus
// per-category history counts. It holds no state of its own.
type AchievementService struct {
	achievementsRepo repository.AchievementsRepositoryI
	progressRepo     repository.ProgressRepositoryI
	historyRepo      repository.HistoryRepositoryI
	clock            clock.Clock
}

func NewAchievementService(achievementsRepo repository.AchievementsRepositoryI, progressRepo repository.ProgressRepositoryI, historyRepo repository.HistoryRepositoryI, clk clock.Clock) *AchievementService {
	if achievementsRepo == nil || progressRepo == nil || historyRepo == nil {
		log.Fatal("on achievement service provided nil repos")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &AchievementService{
		achievementsRepo: achievementsRepo,
		progressRepo:     progressRepo,
		historyRepo:      historyRepo,
		clock:            clk,
	}
}

func (as *AchievementService) Evaluate(ctx context.Context, uid uuid.UUID) ([]*entity.AchievementProgress, error) {
	definitions, err := as.achievementsRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	unlocks, err := as.achievementsRepo.ListUnlocks(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	unlockedAt := make(map[uuid.UUID]*entity.UserAchievementUnlock, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u
	}
	progress, err := as.progressRepo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if progress == nil {
		progress = &entity.UserProgress{UserID: uid}
	}
	counts, err := as.historyRepo.CountByCategory(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	result := make([]*entity.AchievementProgress, 0, len(definitions))
	for _, def := range definitions {
		ap := &entity.AchievementProgress{
			Achievement: *def,
			Progress:    requirementProgress(def, progress, counts),
		}
		if def.RequirementValue > 0 {
			ap.ProgressPercent = min(100, ap.Progress*100/def.RequirementValue)
		}
		if u, ok := unlockedAt[def.ID]; ok {
			ap.Unlocked = true
			at := u.UnlockedAt
			ap.UnlockedAt = &at
		}
		result = append(result, ap)
	}
	return result, nil
}

func (as *AchievementService) CheckAndUnlock(ctx context.Context, uid uuid.UUID) ([]*entity.Achievement, error) {
	evaluated, err := as.Evaluate(ctx, uid)
	if err != nil {
		return nil, err
	}
	newlyUnlocked := make([]*entity.Achievement, 0)
	for _, ap := range evaluated {
		if ap.Unlocked || ap.Progress < ap.Achievement.RequirementValue {
			continue
		}
		inserted, err := as.achievementsRepo.InsertUnlock(ctx, uid, ap.Achievement.ID, as.clock.Now())
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		// A lost race with another session means the row already exists;
		// only the first writer reports the unlock as new.
		if inserted {
			def := ap.Achievement
			newlyUnlocked = append(newlyUnlocked, &def)
		}
	}
	return newlyUnlocked, nil
}

// requirementProgress maps one definition onto its numeric progress value.
func requirementProgress(def *entity.Achievement, progress *entity.UserProgress, counts map[entity.Category]int) int {
	switch def.RequirementType {
	case entity.RequirementChallengesCompleted:
		return progress.TotalCompleted
	case entity.RequirementStreakDays:
		return progress.CurrentStreak
	case entity.RequirementTotalPoints:
		return progress.TotalPoints
	case entity.RequirementCategoryChallenges:
		if def.RequirementCategory == nil {
			return 0
		}
		return counts[*def.RequirementCategory]
	case entity.RequirementAllCategories:
		// Boolean gate rendered as numeric progress: full value when every
		// gate category individually reaches it, otherwise zero.
		for _, category := range entity.GateCategories() {
			if counts[category] < def.RequirementValue {
				return 0
			}
		}
		return def.RequirementValue
	}
	return 0
}
