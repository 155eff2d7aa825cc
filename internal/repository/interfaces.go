package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/momentum/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Searches catalog challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists catalog challenges of one category
	GetByCategory(ctx context.Context, category entity.Category) ([]*entity.Challenge, error)
	// Draws one challenge uniformly at random from the whole catalog
	GetRandom(ctx context.Context) (*entity.Challenge, error)
}

type OccurrencesRepositoryI interface {
	// Creates new scheduled occurrence (external scheduler path)
	Create(ctx context.Context, occ *entity.ScheduledOccurrence) (uuid.UUID, error)
	// Looks up occurrence owned by uid. Unowned rows behave as missing
	GetByIDAndUser(ctx context.Context, id, uid uuid.UUID) (*entity.ScheduledOccurrence, error)
	// Lists occurrences selectable at `now`: pending/notified plus snoozed
	// whose snoozed_until elapsed, ordered by scheduled_at then insertion
	ListEligible(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.ScheduledOccurrence, error)
	// Moves occurrence into snoozed state with both snoozed_until and
	// scheduled_at re-stamped to `until`
	Snooze(ctx context.Context, id uuid.UUID, until time.Time) error
	// Marks occurrence cancelled permanently
	Cancel(ctx context.Context, id uuid.UUID) error
	// Marks occurrence completed. Safe to repeat on a completed row
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

type HistoryRepositoryI interface {
	// Counts completed history entries per challenge category for uid
	CountByCategory(ctx context.Context, uid uuid.UUID) (map[entity.Category]int, error)
}

type ProgressRepositoryI interface {
	// Reads ledger row for uid. Returns nil without error when absent
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
	// Inserts the history entry and rewrites the (row-locked, lazily
	// created) ledger row in one transaction. `apply` mutates the locked
	// snapshot before write-back
	RecordCompletion(ctx context.Context, entry *entity.ChallengeHistoryEntry, apply func(p *entity.UserProgress)) (*entity.UserProgress, error)
}

type AchievementsRepositoryI interface {
	// Lists all achievement definitions
	ListDefinitions(ctx context.Context) ([]*entity.Achievement, error)
	// Lists unlock rows of uid
	ListUnlocks(ctx context.Context, uid uuid.UUID) ([]*entity.UserAchievementUnlock, error)
	// Inserts an unlock row. Duplicate (uid, achievement) pairs are a
	// silent no-op; reports whether the row is new
	InsertUnlock(ctx context.Context, uid, achievementID uuid.UUID, at time.Time) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
