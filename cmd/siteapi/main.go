package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/motaiot/siteapi/internal/auth/google"
	"github.com/motaiot/siteapi/internal/auth/state"
	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/db"
	"github.com/motaiot/siteapi/internal/handlers"
	"github.com/motaiot/siteapi/internal/upstream"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Anti-CSRF state store: Redis when configured, in-memory otherwise.
	var states state.Store
	if cfg.RedisAddr != "" {
		states = state.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Printf("Login state store: redis (%s)", cfg.RedisAddr)
	} else {
		states = state.NewMemoryStore()
		log.Printf("Login state store: in-memory (set REDIS_ADDR for multi-instance deployments)")
	}

	providers, err := handlers.LoadProviders(cfg.ProvidersFile)
	if err != nil {
		log.Fatalf("Failed to load providers catalog: %v", err)
	}

	ragClient := upstream.NewRAGClient(cfg)
	mailClient := upstream.NewMailClient(cfg)

	// Create router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// OAuth flow
	r.Get("/login/{provider}", google.HandleLogin(cfg, states))
	r.Get("/callback/{provider}", google.HandleCallback(cfg, database, states))

	// Session and provider queries
	r.Get("/session", handlers.SessionHandler(cfg, database))
	r.Get("/providers", handlers.ProvidersHandler(providers))

	// Chat
	r.Post("/chat", handlers.ChatHandler(cfg, database, ragClient))
	r.Get("/chat/history", handlers.HistoryHandler(cfg, database))

	// Contact form
	r.Post("/contact", handlers.ContactHandler(cfg, mailClient))

	log.Printf("🚀 siteapi starting on http://%s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
