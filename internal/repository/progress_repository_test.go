package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	progressQuery = regexp.QuoteMeta(`SELECT total_completed, current_streak, longest_streak, total_points, last_completed_date
		FROM user_progress WHERE user_id = $1;`)
	historyInsertQuery = regexp.QuoteMeta(`INSERT INTO challenge_history (id, user_id, challenge_id, completed_at, time_spent_seconds, points_earned, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`)
	lazyRowQuery = regexp.QuoteMeta(`INSERT INTO user_progress (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	lockRowQuery = regexp.QuoteMeta(`SELECT total_completed, current_streak, longest_streak, total_points, last_completed_date
		FROM user_progress WHERE user_id = $1 FOR UPDATE;`)
	updateRowQuery = regexp.QuoteMeta(`UPDATE user_progress SET total_completed = $1, current_streak = $2, longest_streak = $3, total_points = $4, last_completed_date = $5
		WHERE user_id = $6;`)
)

func TestGetProgress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewProgressRepoWithConn(mock)
	lastDate := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	progress := entity.UserProgress{
		UserID:            userID,
		TotalCompleted:    4,
		CurrentStreak:     2,
		LongestStreak:     3,
		TotalPoints:       55,
		LastCompletedDate: &lastDate,
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(progressQuery).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"total_completed", "current_streak", "longest_streak", "total_points", "last_completed_date"}).
				AddRow(progress.TotalCompleted, progress.CurrentStreak, progress.LongestStreak, progress.TotalPoints, progress.LastCompletedDate),
			)
		result, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, progress, *result)
	})
	t.Run("absent row is nil without error", func(t *testing.T) {
		mock.ExpectQuery(progressQuery).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)
		result, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(progressQuery).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.Get(ctx, userID)
		assert.Error(t, err)
	})
}

func TestRecordCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewProgressRepoWithConn(mock)
	entry := entity.ChallengeHistoryEntry{
		ID:               uuid.New(),
		UserID:           userID,
		ChallengeID:      uuid.New(),
		CompletedAt:      time.Now(),
		TimeSpentSeconds: 90,
		PointsEarned:     20,
		Status:           entity.ResolutionSuccess,
	}
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	apply := func(p *entity.UserProgress) {
		p.TotalCompleted++
		p.CurrentStreak = 1
		p.LongestStreak = 1
		p.TotalPoints += entry.PointsEarned
		p.LastCompletedDate = &today
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(historyInsertQuery).
			WithArgs(entry.ID, entry.UserID, entry.ChallengeID, entry.CompletedAt, entry.TimeSpentSeconds, entry.PointsEarned, entry.Status).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(lazyRowQuery).
			WithArgs(entry.UserID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(lockRowQuery).
			WithArgs(entry.UserID).
			WillReturnRows(pgxmock.NewRows([]string{"total_completed", "current_streak", "longest_streak", "total_points", "last_completed_date"}).
				AddRow(0, 0, 0, 0, nil),
			)
		mock.ExpectExec(updateRowQuery).
			WithArgs(1, 1, 1, 20, &today, entry.UserID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		progress, err := repo.RecordCompletion(ctx, &entry, apply)
		assert.NoError(t, err)
		assert.Equal(t, 1, progress.TotalCompleted)
		assert.Equal(t, 20, progress.TotalPoints)
		assert.Equal(t, today, *progress.LastCompletedDate)
	})
	t.Run("unknown challenge", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(historyInsertQuery).
			WithArgs(entry.ID, entry.UserID, entry.ChallengeID, entry.CompletedAt, entry.TimeSpentSeconds, entry.PointsEarned, entry.Status).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		_, err := repo.RecordCompletion(ctx, &entry, apply)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("lock error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(historyInsertQuery).
			WithArgs(entry.ID, entry.UserID, entry.ChallengeID, entry.CompletedAt, entry.TimeSpentSeconds, entry.PointsEarned, entry.Status).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(lazyRowQuery).
			WithArgs(entry.UserID).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(lockRowQuery).
			WithArgs(entry.UserID).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.RecordCompletion(ctx, &entry, apply)
		assert.Error(t, err)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.RecordCompletion(ctx, &entry, apply)
		assert.Error(t, err)
	})
}

func TestProgressIntegrational(t *testing.T) {
	cfg := setupEngineTestDB(t)
	repo := repository.NewProgressRepo(cfg)
	challengeID := seedChallenge(t, cfg, entity.CategoryMental, 10)
	ctx := context.Background()
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	t.Run("get before first completion", func(t *testing.T) {
		progress, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, progress)
	})
	t.Run("first completion creates the row", func(t *testing.T) {
		entry := entity.ChallengeHistoryEntry{
			ID:               uuid.New(),
			UserID:           userID,
			ChallengeID:      challengeID,
			CompletedAt:      time.Now(),
			TimeSpentSeconds: 90,
			PointsEarned:     10,
			Status:           entity.ResolutionSuccess,
		}
		progress, err := repo.RecordCompletion(ctx, &entry, func(p *entity.UserProgress) {
			p.TotalCompleted++
			p.CurrentStreak = 1
			p.LongestStreak = 1
			p.TotalPoints += entry.PointsEarned
			p.LastCompletedDate = &today
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, progress.TotalCompleted)
		assert.Equal(t, 10, progress.TotalPoints)
	})
	t.Run("second completion rereads the locked row", func(t *testing.T) {
		entry := entity.ChallengeHistoryEntry{
			ID:               uuid.New(),
			UserID:           userID,
			ChallengeID:      challengeID,
			CompletedAt:      time.Now(),
			TimeSpentSeconds: 45,
			PointsEarned:     10,
			Status:           entity.ResolutionSuccess,
		}
		progress, err := repo.RecordCompletion(ctx, &entry, func(p *entity.UserProgress) {
			p.TotalCompleted++
			p.TotalPoints += entry.PointsEarned
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, progress.TotalCompleted)
		assert.Equal(t, 20, progress.TotalPoints)
	})
	t.Run("unknown challenge leaves ledger untouched", func(t *testing.T) {
		entry := entity.ChallengeHistoryEntry{
			ID:          uuid.New(),
			UserID:      userID,
			ChallengeID: uuid.New(),
			CompletedAt: time.Now(),
			Status:      entity.ResolutionFailed,
		}
		_, err := repo.RecordCompletion(ctx, &entry, func(p *entity.UserProgress) {
			p.TotalCompleted++
		})
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
		progress, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 2, progress.TotalCompleted)
	})
	t.Run("get after completions", func(t *testing.T) {
		progress, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 2, progress.TotalCompleted)
		assert.Equal(t, 1, progress.CurrentStreak)
		assert.Equal(t, 20, progress.TotalPoints)
		assert.Equal(t, today, progress.LastCompletedDate.UTC())
	})
}
