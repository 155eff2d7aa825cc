package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/momentum/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	queueService       service.QueueServiceI
	progressService    service.ProgressServiceI
	achievementService service.AchievementServiceI
	completionService  service.CompletionServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	QueueService       service.QueueServiceI
	ProgressService    service.ProgressServiceI
	AchievementService service.AchievementServiceI
	CompletionService  service.CompletionServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		queueService:       servicesOptions.QueueService,
		progressService:    servicesOptions.ProgressService,
		achievementService: servicesOptions.AchievementService,
		completionService:  servicesOptions.CompletionService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MonitorMiddleware)
	s.mx.Use(s.RateLimitMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Delete("/account", s.DeleteAccount)
			r.Get("/occurrences", s.ListOccurrences)
			r.Get("/occurrences/next", s.GetNextOccurrence)
			r.Post("/occurrences/{id}/postpone", s.PostponeOccurrence)
			r.Post("/occurrences/{id}/cancel", s.CancelOccurrence)
			r.Post("/occurrences/{id}/complete", s.CompleteOccurrence)
			r.Get("/achievements", s.GetUserAchievements)
			r.Get("/progress", s.GetUserProgress)
		})
	})

	s.mx.With(metricsAuth).Get("/metrics", promhttp.Handler().ServeHTTP)

	return http.ListenAndServe(address, s.mx)
}

// metricsAuth protects /metrics with basic auth from env.
func metricsAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != os.Getenv("METRICS_USER") || pass != os.Getenv("METRICS_PASS") {
			w.Header().Set("WWW-Authenticate", `Basic realm="Metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
