package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/destinique/backend/internal/config"
	"github.com/destinique/backend/internal/db"
	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/server/middleware"
)

// Store is the persistence interface the handlers depend on. *db.DB
// implements it; tests substitute a stub.
type Store interface {
	CreateProfile(ctx context.Context, p *db.Profile) (uuid.UUID, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*db.Profile, error)
	ListProfiles(ctx context.Context) ([]db.Profile, error)
	UpdateProfile(ctx context.Context, p *db.Profile) error
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error

	UpsertMatchScore(ctx context.Context, profileID, candidateID uuid.UUID, overall int) error
	GetMatchScore(ctx context.Context, profileID, candidateID uuid.UUID) (*db.MatchScore, error)

	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	database    *db.DB
	engine      *engine.Engine
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
}

// New creates a new server instance backed by PostgreSQL.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s, err := newWithStore(cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	s.database = database
	return s, nil
}

// newWithStore wires handlers against an arbitrary Store. Used directly by
// tests; New wraps it with a real database connection.
func newWithStore(cfg Config, store Store) (*Server, error) {
	s := &Server{
		store:  store,
		engine: engine.New(),
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(store, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password",
		middleware.Auth(s.jwtService.AsTokenValidator())(http.HandlerFunc(s.authHandler.UpdatePassword)))

	// Profile CRUD endpoints
	mux.HandleFunc("POST /profiles", s.handleCreateProfile)
	mux.HandleFunc("GET /profiles", s.handleListProfiles)
	mux.HandleFunc("GET /profiles/{id}", s.handleGetProfile)
	mux.HandleFunc("PUT /profiles/{id}", s.handleUpdateProfile)
	mux.HandleFunc("DELETE /profiles/{id}", s.handleDeleteProfile)

	// Scoring endpoints derived from stored profiles
	mux.HandleFunc("GET /profiles/{id}/assessments", s.handleGetAssessments)
	mux.HandleFunc("GET /profiles/{id}/cosmic", s.handleGetCosmic)
	mux.HandleFunc("GET /profiles/{id}/compatibility/{candidate_id}", s.handlePairCompatibility)
	mux.HandleFunc("GET /profiles/{id}/matches", s.handleListMatches)

	// Stateless scoring endpoints over caller-supplied data
	mux.HandleFunc("POST /compatibility", s.handleCompatibility)
	mux.HandleFunc("POST /cosmic", s.handleCosmic)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorJSON writes an error JSON response
func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
