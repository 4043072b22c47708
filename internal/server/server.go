package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"edgefinder/internal/catalog"
	"edgefinder/internal/metrics"
	"edgefinder/internal/session"
)

// Options wires the router.
type Options struct {
	Sessions    *session.Manager
	Catalog     catalog.Store
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	CORSOrigins []string
}

// New builds the HTTP router for every ledger intent.
func New(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	h := &Handler{
		sessions: opts.Sessions,
		catalog:  opts.Catalog,
		log:      opts.Logger,
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sports", h.ListSports)
		r.Get("/games", h.ListGames)
		r.Get("/games/{gameID}", h.GetGame)
		r.Get("/props", h.FilterProps)

		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Use(h.withSession)

			r.Get("/", h.GetSession)
			r.Get("/bankroll", h.GetBankroll)
			r.Put("/bankroll", h.SetBalance)
			r.Post("/selection", h.SelectGame)
			r.Post("/analysis", h.Analyze)

			r.Get("/parlay", h.GetParlay)
			r.Post("/parlay/legs", h.AddLeg)
			r.Delete("/parlay/legs", h.ClearLegs)
			r.Delete("/parlay/legs/{index}", h.RemoveLeg)

			r.Get("/audit", h.GetAudit)
			r.Post("/bets", h.LogBet)

			r.Get("/chat", h.GetChat)
			r.Post("/chat", h.SubmitChat)
		})
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
