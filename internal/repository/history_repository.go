package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type HistoryRepository struct {
	conn PgConnection
}

func NewHistoryRepo(cfg DBConfig) *HistoryRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for historyRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for historyRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HistoryRepository{
		conn: pool,
	}
}

func NewHistoryRepoWithConn(conn PgConnection) *HistoryRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for historyRepo: " + err.Error())
	}
	return &HistoryRepository{
		conn: conn,
	}
}

func (hr *HistoryRepository) CountByCategory(ctx context.Context, uid uuid.UUID) (map[entity.Category]int, error) {
	rows, err := hr.conn.Query(ctx, `SELECT c.category, COUNT(*) FROM challenge_history h
		JOIN challenges c ON c.id = h.challenge_id
		WHERE h.user_id = $1 GROUP BY c.category;`, uid)
	if err != nil {
		return nil, errors.New("counting history by category error: " + err.Error())
	}
	defer rows.Close()
	counts := make(map[entity.Category]int)
	for rows.Next() {
		var category entity.Category
		var count int
		if err = rows.Scan(&category, &count); err != nil {
			return nil, errors.New("unmarshalling category count error: " + err.Error())
		}
		counts[category] = count
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return counts, nil
}
