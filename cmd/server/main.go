// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"facilityhub/internal/auth"
	"facilityhub/internal/config"
	"facilityhub/internal/handlers"
	"facilityhub/internal/localstore"
	"facilityhub/internal/logging"
	"facilityhub/internal/middleware"
	"facilityhub/internal/prefs"
	"facilityhub/internal/seed"
	"facilityhub/internal/session"
	"facilityhub/internal/stats"
	"facilityhub/internal/store"
)

func main() {
	// --- Load .env (ignored when absent) then config ---
	_ = godotenv.Load()
	cfg := config.Load()

	// --- Logger ---
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format == "json")

	// Configure session cookie security (dev often needs Secure=false)
	auth.SetCookieSecurity(cfg.Security.Session.CookieSecure)
	auth.SetCookieSameSite(cfg.Security.Session.SameSite)
	if cfg.Security.Session.TTL > 0 {
		auth.SessionTTL = cfg.Security.Session.TTL
	}

	// --- Session store + background sweeper ---
	sessions := session.NewStore()
	sessions.StartSweeper(context.Background(), cfg.Security.Session.SweeperInterval)

	// --- Local storage snapshots (auth-storage, ui-storage) ---
	ls, err := localstore.New(cfg.Storage.Dir)
	if err != nil {
		slog.Error("storage init error", "dir", cfg.Storage.Dir, "err", err)
		os.Exit(1)
	}

	// --- Entity stores + derived stats ---
	reg := store.NewRegistry()
	agg := stats.NewAggregator(reg)

	// Seed the directory before the aggregator can notify anyone.
	seed.Users(reg)
	agg.AlertRecipient = seed.AdminID
	if cfg.Seed.Demo {
		seed.Demo(reg)
	}

	// --- Mock directory credential ---
	secretHash := cfg.Auth.SharedSecretHash
	if secretHash == "" {
		secretHash, err = auth.HashPassword(cfg.Auth.SharedSecret, auth.DefaultArgonParams())
		if err != nil {
			slog.Error("secret hash error", "err", err)
			os.Exit(1)
		}
	}
	dir := auth.NewDirectory(reg.Users, secretHash)

	// --- Identity holder, restored from the persisted snapshot ---
	holder := auth.NewHolder(ls)
	holder.Restore()

	// --- UI preferences ---
	prefMgr := prefs.NewManager(ls)

	// --- Router ---
	mux := chi.NewRouter()

	// Ensure request ID then log requests with slog
	mux.Use(middleware.RequestID(cfg.Security.RequestID.TrustHeader))
	mux.Use(middleware.EnrichLogger)
	mux.Use(middleware.SlogRequestLogger)
	if cfg.Security.RateLimit.Enabled {
		mux.Use(middleware.RateLimitWith(cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst, cfg.Security.RateLimit.TTL))
	}

	// --- CORS middleware ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Frontend.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by browsers
	}))

	// Auth routes
	mux.Post("/auth/login", auth.LoginHandler(dir, holder, sessions))
	mux.Post("/auth/logout", auth.LogoutHandler(holder, sessions))
	mux.With(middleware.RequireAuth(reg, sessions)).Get("/auth/me", auth.MeHandler())

	// Entity, dashboard and admin routes
	handlers.RegisterRoutes(mux, reg, sessions, agg, prefMgr)

	// Health root
	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	// --- Start server ---
	addr := cfg.Server.Addr
	if v := os.Getenv("PORT"); v != "" {
		if strings.Contains(v, ":") {
			addr = v
		} else {
			addr = ":" + v
		}
	}
	slog.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
