/*
Package handler provides the HTTP handlers and routing setup for the polling chat relay.

This file defines the main Router, applying necessary middleware like logging, CORS,
and IP-based rate limiting before delegating requests to the operation handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"pollchat/internal/pkg/limiter"
	"pollchat/internal/pkg/logx"
	"pollchat/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters for the abuse-prone routes, configures
// CORS, and applies global and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	registerLimiter := limiter.NewIPRateLimiter(rate.Limit(deps.Config.RegisterRate), deps.Config.RegisterBurst)
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(deps.Config.CreateRate), deps.Config.CreateBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Pollchat Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", registerLimiter.Middleware(HandleRegister(deps)).ServeHTTP)
		api.Post("/send", HandleSend(deps))
		api.Get("/messages", HandleMessages(deps))

		api.Route("/room", func(room chi.Router) {
			room.Post("/create", createLimiter.Middleware(HandleCreateRoom(deps)).ServeHTTP)
			room.Post("/leave", HandleLeaveRoom(deps))
		})

		api.Get("/online", HandleOnline(deps))
		api.Post("/logout", HandleLogout(deps))
		api.Get("/announcement", HandleAnnouncement(deps))
	})

	return r
}
