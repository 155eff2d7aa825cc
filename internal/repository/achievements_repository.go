package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) ListDefinitions(ctx context.Context) ([]*entity.Achievement, error) {
	definitions := make([]*entity.Achievement, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, name, description, requirement_type, requirement_value, requirement_category, tier
		FROM achievements ORDER BY requirement_value ASC;`)
	if err != nil {
		return nil, errors.New("listing achievement definitions error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Achievement{}
		err = rows.Scan(&a.ID, &a.Name, &a.Description, &a.RequirementType, &a.RequirementValue, &a.RequirementCategory, &a.Tier)
		if err != nil {
			return nil, errors.New("unmarshalling achievement error: " + err.Error())
		}
		definitions = append(definitions, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return definitions, nil
}

func (ar *AchievementsRepository) ListUnlocks(ctx context.Context, uid uuid.UUID) ([]*entity.UserAchievementUnlock, error) {
	unlocks := make([]*entity.UserAchievementUnlock, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, achievement_id, unlocked_at
		FROM user_achievements WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("listing unlocks error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		u := entity.UserAchievementUnlock{}
		err = rows.Scan(&u.ID, &u.UserID, &u.AchievementID, &u.UnlockedAt)
		if err != nil {
			return nil, errors.New("unmarshalling unlock error: " + err.Error())
		}
		unlocks = append(unlocks, &u)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return unlocks, nil
}

func (ar *AchievementsRepository) InsertUnlock(ctx context.Context, uid, achievementID uuid.UUID, at time.Time) (bool, error) {
	// ON CONFLICT keeps unlocking idempotent under retries: the unique
	// (user_id, achievement_id) pair absorbs duplicate inserts silently.
	ct, err := ar.conn.Exec(ctx, `INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3) ON CONFLICT (user_id, achievement_id) DO NOTHING;`, uid, achievementID, at)
	if err != nil {
		return false, errors.New("inserting unlock error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}
