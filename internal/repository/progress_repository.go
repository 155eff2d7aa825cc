package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

// ProgressRepository owns the per-user ledger row and the history insert
// that goes with it. Both writes run in one transaction with the ledger row
// locked, so two sessions of the same account cannot double-count a streak.
type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	var progress entity.UserProgress
	progress.UserID = uid
	row := pr.conn.QueryRow(ctx, `SELECT total_completed, current_streak, longest_streak, total_points, last_completed_date
		FROM user_progress WHERE user_id = $1;`, uid)
	if err := row.Scan(&progress.TotalCompleted, &progress.CurrentStreak, &progress.LongestStreak, &progress.TotalPoints, &progress.LastCompletedDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting user progress error: " + err.Error())
	}
	return &progress, nil
}

func (pr *ProgressRepository) RecordCompletion(ctx context.Context, entry *entity.ChallengeHistoryEntry, apply func(p *entity.UserProgress)) (*entity.UserProgress, error) {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning completion tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO challenge_history (id, user_id, challenge_id, completed_at, time_spent_seconds, points_earned, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		entry.ID,
		entry.UserID,
		entry.ChallengeID,
		entry.CompletedAt,
		entry.TimeSpentSeconds,
		entry.PointsEarned,
		entry.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrChallengeNotFound
			}
		}
		return nil, errors.New("inserting history entry error: " + err.Error())
	}

	// Lazy all-zero row on first read, then lock it for the read-modify-write.
	_, err = tx.Exec(ctx, `INSERT INTO user_progress (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, entry.UserID)
	if err != nil {
		return nil, errors.New("creating user progress row error: " + err.Error())
	}
	progress := entity.UserProgress{UserID: entry.UserID}
	row := tx.QueryRow(ctx, `SELECT total_completed, current_streak, longest_streak, total_points, last_completed_date
		FROM user_progress WHERE user_id = $1 FOR UPDATE;`, entry.UserID)
	if err = row.Scan(&progress.TotalCompleted, &progress.CurrentStreak, &progress.LongestStreak, &progress.TotalPoints, &progress.LastCompletedDate); err != nil {
		return nil, errors.New("locking user progress row error: " + err.Error())
	}

	apply(&progress)

	_, err = tx.Exec(ctx, `UPDATE user_progress SET total_completed = $1, current_streak = $2, longest_streak = $3, total_points = $4, last_completed_date = $5
		WHERE user_id = $6;`,
		progress.TotalCompleted,
		progress.CurrentStreak,
		progress.LongestStreak,
		progress.TotalPoints,
		progress.LastCompletedDate,
		progress.UserID,
	)
	if err != nil {
		return nil, errors.New("updating user progress error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing completion tx error: " + err.Error())
	}
	return &progress, nil
}
