package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type OccurrencesRepository struct {
	conn PgConnection
}

func NewOccurrencesRepo(cfg DBConfig) *OccurrencesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for occurrencesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for occurrencesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &OccurrencesRepository{
		conn: pool,
	}
}

func NewOccurrencesRepoWithConn(conn PgConnection) *OccurrencesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for occurrencesRepo: " + err.Error())
	}
	return &OccurrencesRepository{
		conn: conn,
	}
}

func (or *OccurrencesRepository) Create(ctx context.Context, occ *entity.ScheduledOccurrence) (uuid.UUID, error) {
	var id uuid.UUID
	row := or.conn.QueryRow(ctx, `INSERT INTO scheduled_occurrences (user_id, challenge_id, scheduled_at, status)
		VALUES ($1, $2, $3, $4) RETURNING id;`,
		occ.UserID,
		occ.ChallengeID,
		occ.ScheduledAt,
		occ.Status,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrChallengeNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating occurrence error: " + err.Error())
	}
	return id, nil
}

func (or *OccurrencesRepository) GetByIDAndUser(ctx context.Context, id, uid uuid.UUID) (*entity.ScheduledOccurrence, error) {
	var occ entity.ScheduledOccurrence
	occ.ID = id
	row := or.conn.QueryRow(ctx, `SELECT user_id, challenge_id, scheduled_at, status, snoozed_until, created_at
		FROM scheduled_occurrences WHERE id = $1 AND user_id = $2;`, id, uid)
	if err := row.Scan(&occ.UserID, &occ.ChallengeID, &occ.ScheduledAt, &occ.Status, &occ.SnoozedUntil, &occ.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrOccurrenceNotFound
		}
		return nil, errors.New("getting occurrence by id error: " + err.Error())
	}
	return &occ, nil
}

func (or *OccurrencesRepository) ListEligible(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.ScheduledOccurrence, error) {
	occurrences := make([]*entity.ScheduledOccurrence, 0)
	rows, err := or.conn.Query(ctx, `SELECT id, user_id, challenge_id, scheduled_at, status, snoozed_until, created_at
		FROM scheduled_occurrences
		WHERE user_id = $1 AND (status IN ('pending', 'notified') OR (status = 'snoozed' AND snoozed_until <= $2))
		ORDER BY scheduled_at ASC, created_at ASC;`, uid, now)
	if err != nil {
		return nil, errors.New("listing eligible occurrences error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		occ := entity.ScheduledOccurrence{}
		err = rows.Scan(&occ.ID, &occ.UserID, &occ.ChallengeID, &occ.ScheduledAt, &occ.Status, &occ.SnoozedUntil, &occ.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling occurrence error: " + err.Error())
		}
		occurrences = append(occurrences, &occ)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return occurrences, nil
}

func (or *OccurrencesRepository) Snooze(ctx context.Context, id uuid.UUID, until time.Time) error {
	// scheduled_at is re-stamped too so the snoozed row re-enters the
	// eligibility ordering at the back instead of re-qualifying first.
	ct, err := or.conn.Exec(ctx, `UPDATE scheduled_occurrences SET status = 'snoozed', snoozed_until = $1, scheduled_at = $1
		WHERE id = $2 AND status NOT IN ('completed', 'cancelled');`, until, id)
	if err != nil {
		return errors.New("snoozing occurrence error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrOccurrenceNotFound
	}
	return nil
}

func (or *OccurrencesRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	ct, err := or.conn.Exec(ctx, `UPDATE scheduled_occurrences SET status = 'cancelled', snoozed_until = NULL
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled');`, id)
	if err != nil {
		return errors.New("cancelling occurrence error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrOccurrenceNotFound
	}
	return nil
}

func (or *OccurrencesRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	// No RowsAffected check: repeating the update on a completed row is
	// the retry path and must stay a no-op.
	_, err := or.conn.Exec(ctx, `UPDATE scheduled_occurrences SET status = 'completed', snoozed_until = NULL
		WHERE id = $1 AND status != 'cancelled';`, id)
	if err != nil {
		return errors.New("marking occurrence completed error: " + err.Error())
	}
	return nil
}
