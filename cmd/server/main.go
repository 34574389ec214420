package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/shopassist/internal/middleware"
	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/oracle"
	"github.com/mmynk/shopassist/internal/service"
	"github.com/mmynk/shopassist/internal/storage"
	"github.com/mmynk/shopassist/internal/storage/memory"
	"github.com/mmynk/shopassist/internal/storage/sqlite"
	"github.com/mmynk/shopassist/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/shopassist.db")
	port := getEnv("PORT", "8080")
	apiKey := os.Getenv("GEMINI_API_KEY")
	model := getEnv("GEMINI_MODEL", oracle.DefaultModel)

	if apiKey == "" {
		slog.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}

	// DB_PATH=:memory: selects the in-process store, useful for local
	// experimentation without a database file.
	var store storage.Store
	var err error
	if dbPath == ":memory:" {
		store = memory.New()
	} else {
		store, err = sqlite.New(dbPath)
		if err != nil {
			slog.Error("failed to initialize storage", "error", err)
			os.Exit(1)
		}
	}
	defer store.Close()
	slog.Info("storage initialized", "database", dbPath)

	gen, err := oracle.NewGemini(context.Background(), apiKey, model)
	if err != nil {
		slog.Error("failed to initialize oracle", "error", err)
		os.Exit(1)
	}

	srv := &server{
		assistant: service.NewAssistant(store, gen),
		lists:     service.NewListService(store),
		places:    service.NewPlaceService(store),
	}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/turn", middleware.RequireOwner(http.HandlerFunc(srv.handleTurn)))
	mux.Handle("GET /v1/items", middleware.RequireOwner(http.HandlerFunc(srv.handleListItems)))
	mux.Handle("POST /v1/places", middleware.RequireOwner(http.HandlerFunc(srv.handleRegisterPlace)))
	mux.Handle("POST /v1/places/check", middleware.RequireOwner(http.HandlerFunc(srv.handleCheckProximity)))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with h2c for HTTP/2 without TLS
	handler := h2c.NewHandler(middleware.Logging(mux), &http2.Server{})

	addr := ":" + port
	slog.Info("server starting", "address", addr, "model", model)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// server holds the request handlers and their service dependencies.
type server struct {
	assistant *service.Assistant
	lists     *service.ListService
	places    *service.PlaceService
}

type turnRequest struct {
	Message string `json:"message"`
}

type turnResponse struct {
	Text string `json:"text"`
}

func (s *server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	text, err := s.assistant.ProcessTurn(r.Context(), middleware.GetOwnerID(r.Context()), req.Message)
	if err != nil {
		slog.Error("turn failed", "error", err)
		http.Error(w, "turn failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, turnResponse{Text: text})
}

func (s *server) handleListItems(w http.ResponseWriter, r *http.Request) {
	includeCompleted := r.URL.Query().Get("includeCompleted") == "true"

	result, err := s.lists.ListItems(r.Context(), middleware.GetOwnerID(r.Context()), includeCompleted)
	if err != nil {
		slog.Error("list items failed", "error", err)
		http.Error(w, "list items failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type registerPlaceRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radiusMeters"`
}

func (s *server) handleRegisterPlace(w http.ResponseWriter, r *http.Request) {
	var req registerPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	err := s.places.RegisterPlace(r.Context(), middleware.GetOwnerID(r.Context()), req.Name, req.Latitude, req.Longitude, req.RadiusMeters)
	if isValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("register place failed", "error", err)
		http.Error(w, "register place failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": fmt.Sprintf("registered %s", req.Name)})
}

type checkProximityRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (s *server) handleCheckProximity(w http.ResponseWriter, r *http.Request) {
	var req checkProximityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.places.CheckProximity(r.Context(), middleware.GetOwnerID(r.Context()), req.Latitude, req.Longitude)
	if isValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("proximity check failed", "error", err)
		http.Error(w, "proximity check failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidLatitude) ||
		errors.Is(err, models.ErrInvalidLongitude) ||
		errors.Is(err, models.ErrInvalidRadius)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
