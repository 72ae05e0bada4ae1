package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/formulated/go/internal/config"
	"github.com/mcdev12/formulated/go/internal/puller"
	"github.com/mcdev12/formulated/go/internal/rest"
	"github.com/mcdev12/formulated/go/internal/users"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(cfg *config.Config, services *Services) *http.Server {
	mux := http.NewServeMux()

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	// credentials require explicit origins, never "*"
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins:   origins,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	registerServices(mux, services)
	setupHealthCheck(mux, services)
	mux.Handle("GET /metrics", promhttp.HandlerFor(services.Registry, promhttp.HandlerOpts{}))

	var handler http.Handler = mux
	handler = services.Sessions.Middleware(services.UserApp)(handler)
	handler = accessLog(handler)
	handler = c.Handler(handler)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	services.Teams.RegisterRoutes(mux)
	services.Members.RegisterRoutes(mux)
	services.Races.RegisterRoutes(mux)
	services.Users.RegisterRoutes(mux)
	services.Interactions.RegisterRoutes(mux)

	syncPath, syncHandler := puller.NewSyncServiceHandler(services.Sync,
		connect.WithInterceptors(users.StaffInterceptor()),
	)
	mux.Handle(syncPath, syncHandler)
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// upstream is a provider client that can report whether it answers
type upstream interface {
	HealthCheck(ctx context.Context) bool
}

type healthResponse struct {
	Status    string            `json:"status"`
	Upstreams map[string]string `json:"upstreams,omitempty"`
}

func setupHealthCheck(mux *http.ServeMux, services *Services) {
	mux.Handle("GET /health", healthHandler(services.Database, services.Upstreams))
}

// healthHandler fails only on the database. An unreachable provider
// degrades the status but the server keeps serving stored data.
func healthHandler(db pinger, upstreams map[string]upstream) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error().Err(err).Msg("health check: database unreachable")
			rest.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}

		resp := healthResponse{Status: "ok"}
		if len(upstreams) > 0 {
			resp.Upstreams = make(map[string]string, len(upstreams))
		}
		for name, u := range upstreams {
			if u.HealthCheck(ctx) {
				resp.Upstreams[name] = "ok"
				continue
			}
			log.Warn().Str("upstream", name).Msg("health check: upstream unreachable")
			resp.Upstreams[name] = "unavailable"
			resp.Status = "degraded"
		}
		rest.WriteJSON(w, http.StatusOK, resp)
	}
}

func accessLog(next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}
		hlog.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	return hlog.NewHandler(log.Logger)(h)
}
