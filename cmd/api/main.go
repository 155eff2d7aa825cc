// @title Momentum API
// @description API for the 2-minute challenge app "Momentum"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/momentum/internal/api"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/clock"
	"github.com/limbo/momentum/pkg/config"
	jwtservice "github.com/limbo/momentum/pkg/jwt_service"
)

func init() {
	service.InitValidator()
	api.InitPrometheus()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	clk := clock.System()

	challengesRepo := repository.NewChallengesRepo(&dbCfg)
	occurrencesRepo := repository.NewOccurrencesRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)
	historyRepo := repository.NewHistoryRepo(&dbCfg)
	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)

	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	queueService := service.NewQueueService(occurrencesRepo, challengesRepo, clk)
	progressService := service.NewProgressService(progressRepo, challengesRepo, clk)
	achievementService := service.NewAchievementService(achievementsRepo, progressRepo, historyRepo, clk)
	completionService := service.NewCompletionService(occurrencesRepo, progressService, achievementService)

	serv := api.New(&api.ServicesList{
		UserService:        userService,
		QueueService:       queueService,
		ProgressService:    progressService,
		AchievementService: achievementService,
		CompletionService:  completionService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	go api.CleanupVisitors()
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
