package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/middleware"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/response"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/jwt"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/sse"
)

type RouterOptions struct {
	Env         string
	Version     string
	FrontendURL string
	LogLevel    slog.Level
}

type Handlers struct {
	Auth         AuthHandler
	Job          JobHandler
	Timekeeping  TimekeepingHandler
	Schedule     ScheduleHandler
	Notification NotificationHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, hub *sse.Hub, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ncl-timekeeping"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]interface{}{
			"status":      "ok",
			"subscribers": hub.TotalSubscribers(),
		})
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Stream token travels in the query string
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
				r.Get("/stream-token", h.Auth.StreamToken)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Job.List)
				r.Get("/{id}", h.Job.Get)
				r.Get("/{id}/checklist", h.Job.Checklist)
			})

			r.Route("/timekeeping", func(r chi.Router) {
				r.Get("/state", h.Timekeeping.State)
				r.Get("/stats", h.Timekeeping.Stats)
				r.Get("/records", h.Timekeeping.Records)
				r.Get("/records/export", h.Timekeeping.ExportRecords)
				r.Post("/check-in", h.Timekeeping.CheckIn)
				r.Post("/check-out", h.Timekeeping.CheckOut)

				r.Route("/proxy", func(r chi.Router) {
					r.Post("/check-in", h.Timekeeping.ProxyCheckIn)
					r.Post("/check-out", h.Timekeeping.ProxyCheckOut)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.Month)
				r.Get("/history", h.Schedule.History)
			})
		})
	})
	return r
}
