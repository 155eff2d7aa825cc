package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Category is the fixed challenge category set. "extreme" exists in the
// catalog but is excluded from the all_categories achievement gate.
type Category string

const (
	CategoryPhysical      Category = "physical"
	CategoryMental        Category = "mental"
	CategoryLearning      Category = "learning"
	CategoryFinance       Category = "finance"
	CategoryRelationships Category = "relationships"
	CategoryExtreme       Category = "extreme"
)

// GateCategories returns the categories that must each reach the requirement
// value before an all_categories achievement counts.
func GateCategories() []Category {
	return []Category{
		CategoryPhysical,
		CategoryMental,
		CategoryLearning,
		CategoryFinance,
		CategoryRelationships,
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Challenge is a catalog row. The engine never writes challenges and never
// assumes a difficulty->points convention; Points is read as stored.
type Challenge struct {
	ID           uuid.UUID  `json:"id"`
	Category     Category   `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Points       int        `json:"points"`
	Instructions string     `json:"instructions"`
}

type OccurrenceStatus string

const (
	OccurrencePending   OccurrenceStatus = "pending"
	OccurrenceNotified  OccurrenceStatus = "notified"
	OccurrenceSnoozed   OccurrenceStatus = "snoozed"
	OccurrenceCompleted OccurrenceStatus = "completed"
	OccurrenceCancelled OccurrenceStatus = "cancelled"
)

// Terminal reports whether no further transition is legal from s.
func (s OccurrenceStatus) Terminal() bool {
	return s == OccurrenceCompleted || s == OccurrenceCancelled
}

// ScheduledOccurrence is one scheduled instance of a challenge prompt.
// SnoozedUntil is non-nil exactly when Status is "snoozed".
type ScheduledOccurrence struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"uid"`
	ChallengeID  uuid.UUID        `json:"challenge_id"`
	ScheduledAt  time.Time        `json:"scheduled_at"`
	Status       OccurrenceStatus `json:"status"`
	SnoozedUntil *time.Time       `json:"snoozed_until,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type Resolution string

const (
	ResolutionSuccess Resolution = "success"
	ResolutionFailed  Resolution = "failed"
)

func (r Resolution) Valid() bool {
	return r == ResolutionSuccess || r == ResolutionFailed
}

// ChallengeHistoryEntry is immutable once created.
type ChallengeHistoryEntry struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"uid"`
	ChallengeID      uuid.UUID  `json:"challenge_id"`
	CompletedAt      time.Time  `json:"completed_at"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
	PointsEarned     int        `json:"points_earned"`
	Status           Resolution `json:"status"`
}

// UserProgress is the per-user ledger row. LastCompletedDate holds a
// date-only value (midnight UTC); nil before the first completion.
type UserProgress struct {
	UserID            uuid.UUID  `json:"uid"`
	TotalCompleted    int        `json:"total_completed"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	TotalPoints       int        `json:"total_points"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
}

type RequirementType string

const (
	RequirementChallengesCompleted RequirementType = "challenges_completed"
	RequirementStreakDays          RequirementType = "streak_days"
	RequirementTotalPoints         RequirementType = "total_points"
	RequirementCategoryChallenges  RequirementType = "category_challenges"
	RequirementAllCategories       RequirementType = "all_categories"
)

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Achievement is a catalog definition. RequirementCategory is only set for
// category_challenges requirements.
type Achievement struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	RequirementType     RequirementType `json:"requirement_type"`
	RequirementValue    int             `json:"requirement_value"`
	RequirementCategory *Category       `json:"requirement_category,omitempty"`
	Tier                Tier            `json:"tier"`
}

type UserAchievementUnlock struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	AchievementID uuid.UUID `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// AchievementProgress is the evaluated per-user view of one definition.
type AchievementProgress struct {
	Achievement     Achievement `json:"achievement"`
	Unlocked        bool        `json:"unlocked"`
	Progress        int         `json:"progress"`
	ProgressPercent int         `json:"progress_percent"`
	UnlockedAt      *time.Time  `json:"unlocked_at,omitempty"`
}
