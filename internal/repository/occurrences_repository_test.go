package repository_test

import (
	"context"
	"database/sql"
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

func TestCreateOccurrence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewOccurrencesRepoWithConn(mock)
	occ := entity.ScheduledOccurrence{
		UserID:      userID,
		ChallengeID: uuid.New(),
		ScheduledAt: time.Now(),
		Status:      entity.OccurrencePending,
	}
	oid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO scheduled_occurrences (user_id, challenge_id, scheduled_at, status)
		VALUES ($1, $2, $3, $4) RETURNING id;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(occ.UserID, occ.ChallengeID, occ.ScheduledAt, occ.Status).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(oid))
		id, err := repo.Create(ctx, &occ)
		assert.NoError(t, err)
		assert.Equal(t, oid, id)
	})
	t.Run("unknown challenge", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(occ.UserID, occ.ChallengeID, occ.ScheduledAt, occ.Status).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &occ)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(occ.UserID, occ.ChallengeID, occ.ScheduledAt, occ.Status).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &occ)
		assert.Error(t, err)
	})
}

func TestGetOccurrenceByIDAndUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewOccurrencesRepoWithConn(mock)
	occ := entity.ScheduledOccurrence{
		ID:          uuid.New(),
		UserID:      userID,
		ChallengeID: uuid.New(),
		ScheduledAt: time.Now(),
		Status:      entity.OccurrenceNotified,
		CreatedAt:   time.Now(),
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT user_id, challenge_id, scheduled_at, status, snoozed_until, created_at
		FROM scheduled_occurrences WHERE id = $1 AND user_id = $2;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(occ.ID, occ.UserID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "challenge_id", "scheduled_at", "status", "snoozed_until", "created_at"}).
				AddRow(occ.UserID, occ.ChallengeID, occ.ScheduledAt, occ.Status, occ.SnoozedUntil, occ.CreatedAt),
			)
		result, err := repo.GetByIDAndUser(ctx, occ.ID, occ.UserID)
		assert.NoError(t, err)
		assert.Equal(t, occ, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(occ.ID, occ.UserID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByIDAndUser(ctx, occ.ID, occ.UserID)
		assert.ErrorIs(t, err, errorvalues.ErrOccurrenceNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(occ.ID, occ.UserID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByIDAndUser(ctx, occ.ID, occ.UserID)
		assert.Error(t, err)
	})
}

func TestListEligibleOccurrences(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewOccurrencesRepoWithConn(mock)
	now := time.Now()
	snoozedUntil := now.Add(-time.Minute)
	occurrences := []*entity.ScheduledOccurrence{
		{
			ID:          uuid.New(),
			UserID:      userID,
			ChallengeID: uuid.New(),
			ScheduledAt: now.Add(-time.Hour),
			Status:      entity.OccurrencePending,
			CreatedAt:   now.Add(-time.Hour),
		},
		{
			ID:           uuid.New(),
			UserID:       userID,
			ChallengeID:  uuid.New(),
			ScheduledAt:  snoozedUntil,
			Status:       entity.OccurrenceSnoozed,
			SnoozedUntil: &snoozedUntil,
			CreatedAt:    now.Add(-time.Hour * 2),
		},
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, challenge_id, scheduled_at, status, snoozed_until, created_at
		FROM scheduled_occurrences
		WHERE user_id = $1 AND (status IN ('pending', 'notified') OR (status = 'snoozed' AND snoozed_until <= $2))
		ORDER BY scheduled_at ASC, created_at ASC;`)
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "challenge_id", "scheduled_at", "status", "snoozed_until", "created_at"})
		for _, occ := range occurrences {
			rows.AddRow(occ.ID, occ.UserID, occ.ChallengeID, occ.ScheduledAt, occ.Status, occ.SnoozedUntil, occ.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, now).
			WillReturnRows(rows)
		result, err := repo.ListEligible(ctx, userID, now)
		assert.NoError(t, err)
		assert.Equal(t, len(occurrences), len(result))
		for i := range result {
			assert.Equal(t, *occurrences[i], *result[i])
		}
	})
	t.Run("empty queue", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "challenge_id", "scheduled_at", "status", "snoozed_until", "created_at"}))
		result, err := repo.ListEligible(ctx, userID, now)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, now).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListEligible(ctx, userID, now)
		assert.Error(t, err)
	})
}

func TestSnoozeOccurrence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewOccurrencesRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	until := time.Now().Add(time.Minute * 2)
	query := regexp.QuoteMeta(`UPDATE scheduled_occurrences SET status = 'snoozed', snoozed_until = $1, scheduled_at = $1
		WHERE id = $2 AND status NOT IN ('completed', 'cancelled');`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(until, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Snooze(ctx, id, until)
		assert.NoError(t, err)
	})
	t.Run("terminal or missing row", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(until, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Snooze(ctx, id, until)
		assert.ErrorIs(t, err, errorvalues.ErrOccurrenceNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(until, id).
			WillReturnError(errors.New("db error"))
		err := repo.Snooze(ctx, id, until)
		assert.Error(t, err)
	})
}

func TestCancelOccurrence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewOccurrencesRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE scheduled_occurrences SET status = 'cancelled', snoozed_until = NULL
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled');`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Cancel(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("terminal or missing row", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Cancel(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrOccurrenceNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Cancel(ctx, id)
		assert.Error(t, err)
	})
}

func TestMarkOccurrenceCompleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewOccurrencesRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE scheduled_occurrences SET status = 'completed', snoozed_until = NULL
		WHERE id = $1 AND status != 'cancelled';`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.MarkCompleted(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("repeat on completed row is a no-op", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.MarkCompleted(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.MarkCompleted(ctx, id)
		assert.Error(t, err)
	})
}

func TestOccurrencesIntegrational(t *testing.T) {
	cfg := setupEngineTestDB(t)
	repo := repository.NewOccurrencesRepo(cfg)
	challengeID := seedChallenge(t, cfg, entity.CategoryPhysical, 10)
	ctx := context.Background()
	now := time.Now()
	occurrences := []*entity.ScheduledOccurrence{}
	for i := range 3 {
		occurrences = append(occurrences, &entity.ScheduledOccurrence{
			UserID:      userID,
			ChallengeID: challengeID,
			ScheduledAt: now.Add(time.Duration(i) * -time.Hour),
			Status:      entity.OccurrencePending,
		})
	}
	t.Run("create", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			for _, occ := range occurrences {
				id, err := repo.Create(ctx, occ)
				assert.NoError(t, err)
				occ.ID = id
			}
		})
		t.Run("unknown challenge error", func(t *testing.T) {
			_, err := repo.Create(ctx, &entity.ScheduledOccurrence{
				UserID:      userID,
				ChallengeID: uuid.New(),
				ScheduledAt: now,
				Status:      entity.OccurrencePending,
			})
			assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
		})
	})
	t.Run("list eligible ordering", func(t *testing.T) {
		result, err := repo.ListEligible(ctx, userID, now)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(result))
		// earliest scheduled_at first, so creation order is reversed
		assert.Equal(t, occurrences[2].ID, result[0].ID)
		assert.Equal(t, occurrences[0].ID, result[2].ID)
	})
	t.Run("snooze moves row to the back", func(t *testing.T) {
		until := now.Add(time.Minute * 2)
		err := repo.Snooze(ctx, occurrences[2].ID, until)
		assert.NoError(t, err)
		t.Run("hidden until snooze elapses", func(t *testing.T) {
			result, err := repo.ListEligible(ctx, userID, now)
			assert.NoError(t, err)
			assert.Equal(t, 2, len(result))
		})
		t.Run("re-enters last after elapsing", func(t *testing.T) {
			result, err := repo.ListEligible(ctx, userID, until.Add(time.Second))
			assert.NoError(t, err)
			assert.Equal(t, 3, len(result))
			assert.Equal(t, occurrences[2].ID, result[2].ID)
		})
	})
	t.Run("cancel", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			err := repo.Cancel(ctx, occurrences[1].ID)
			assert.NoError(t, err)
			occ, err := repo.GetByIDAndUser(ctx, occurrences[1].ID, userID)
			assert.NoError(t, err)
			assert.Equal(t, entity.OccurrenceCancelled, occ.Status)
		})
		t.Run("already cancelled", func(t *testing.T) {
			err := repo.Cancel(ctx, occurrences[1].ID)
			assert.ErrorIs(t, err, errorvalues.ErrOccurrenceNotFound)
		})
	})
	t.Run("mark completed", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			err := repo.MarkCompleted(ctx, occurrences[0].ID)
			assert.NoError(t, err)
			occ, err := repo.GetByIDAndUser(ctx, occurrences[0].ID, userID)
			assert.NoError(t, err)
			assert.Equal(t, entity.OccurrenceCompleted, occ.Status)
		})
		t.Run("repeat is a no-op", func(t *testing.T) {
			err := repo.MarkCompleted(ctx, occurrences[0].ID)
			assert.NoError(t, err)
		})
	})
	t.Run("unowned row behaves as missing", func(t *testing.T) {
		_, err := repo.GetByIDAndUser(ctx, occurrences[0].ID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrOccurrenceNotFound)
	})
}

func seedChallenge(t *testing.T, cfg *testPGConfig, category entity.Category, points int) uuid.UUID {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	id := uuid.New()
	_, err = conn.Exec(`INSERT INTO challenges (id, category, difficulty, points, instructions) VALUES ($1, $2, $3, $4, $5);`,
		id, category, entity.DifficultyEasy, points, "do the thing")
	if err != nil {
		t.Fatal("seeding challenge error: " + err.Error())
	}
	return id
}
