package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

// ChallengesRepository reads the challenge catalog. The engine never writes
// this table; authoring happens elsewhere.
type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var ch entity.Challenge
	ch.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT category, difficulty, points, instructions FROM challenges WHERE id = $1;`, id)
	if err := row.Scan(&ch.Category, &ch.Difficulty, &ch.Points, &ch.Instructions); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &ch, nil
}

func (cr *ChallengesRepository) GetByCategory(ctx context.Context, category entity.Category) ([]*entity.Challenge, error) {
	challenges := make([]*entity.Challenge, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, category, difficulty, points, instructions
		FROM challenges WHERE category = $1;`, category)
	if err != nil {
		return nil, errors.New("getting challenges by category error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		ch := entity.Challenge{}
		err = rows.Scan(&ch.ID, &ch.Category, &ch.Difficulty, &ch.Points, &ch.Instructions)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, &ch)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) GetRandom(ctx context.Context) (*entity.Challenge, error) {
	var ch entity.Challenge
	row := cr.conn.QueryRow(ctx, `SELECT id, category, difficulty, points, instructions FROM challenges ORDER BY random() LIMIT 1;`)
	if err := row.Scan(&ch.ID, &ch.Category, &ch.Difficulty, &ch.Points, &ch.Instructions); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEmptyCatalog
		}
		return nil, errors.New("getting random challenge error: " + err.Error())
	}
	return &ch, nil
}
