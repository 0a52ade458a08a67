// go-app/main.go
// HTTP service main package for the tileplay move server
// Copyright (C) 2026 The tileplay authors

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"

	tileplay "github.com/vthorsteinsson/tileplay"
)

// service holds the configuration and request handlers of the server
type service struct {
	server *tileplay.Server
	// Corresponding Authorization header (or "" if no auth required)
	authHeader string
	// Allowed access control (CORS) origins
	allowedOrigins string
}

func (s *service) validate(w http.ResponseWriter, r *http.Request, req any) bool {
	// Set CORS headers
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", s.allowedOrigins)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle preflight OPTIONS request
	if r.Method == http.MethodOptions {
		// Returning false simply causes the handler to return the response headers
		return false
	}

	// We only accept POST requests
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}
	// Check for a bearer authorization token,
	// which must match the configured access key, if present
	if s.authHeader != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != s.authHeader {
			log.Warn().Str("path", r.URL.Path).Msg("authorization-mismatch")
			http.Error(w, "Authorization header mismatch", http.StatusUnauthorized)
			return false
		}
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		// Not valid JSON
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *service) movesHandler(w http.ResponseWriter, r *http.Request) {
	var req tileplay.MovesRequest
	if !s.validate(w, r, &req) {
		return
	}
	s.server.HandleMovesRequest(w, r, req)
}

func (s *service) validateHandler(w http.ResponseWriter, r *http.Request) {
	var req tileplay.ValidateRequest
	if !s.validate(w, r, &req) {
		return
	}
	s.server.HandleValidateRequest(w, req)
}

func (s *service) wordcheckHandler(w http.ResponseWriter, r *http.Request) {
	var req tileplay.WordCheckRequest
	if !s.validate(w, r, &req) {
		return
	}
	s.server.HandleWordCheckRequest(w, req)
}

func (s *service) matchHandler(w http.ResponseWriter, r *http.Request) {
	var req tileplay.MatchRequest
	if !s.validate(w, r, &req) {
		return
	}
	s.server.HandleMatchRequest(w, req)
}

func warmupHandler(w http.ResponseWriter, r *http.Request) {
	// No concrete action required
	log.Info().Msg("warmup-request")
}

func run() error {
	cfg, err := tileplay.LoadConfig(".env")
	if err != nil {
		return err
	}
	if err := tileplay.SetupLogging(cfg.LogLevel, os.Stderr, false); err != nil {
		return err
	}
	log.Info().Str("go", runtime.Version()).Msg("moves-service-starting")

	dict, err := tileplay.LoadDictionaryFile(cfg.DictionaryPath, cfg.CrossCacheSize)
	if err != nil {
		return err
	}
	gen := tileplay.NewGenerator(dict, cfg.GeneratorOptions()...)
	s := &service{
		server:         tileplay.NewServer(gen, tileplay.EnglishTileSet),
		allowedOrigins: cfg.AllowedOrigins,
	}
	// Figure out the authorization header, if required
	if cfg.AccessKey != "" {
		s.authHeader = "Bearer " + cfg.AccessKey
	}
	if cfg.AllowedOrigins == "*" {
		log.Info().Msg("no allowed origins specified, allowing all")
	} else {
		log.Info().Str("origins", cfg.AllowedOrigins).Msg("allowed-cors-origins")
	}

	mux := http.NewServeMux()
	// Set up a dummy warmup handler
	mux.HandleFunc("/_ah/warmup", warmupHandler)
	// Set up the actual service handlers
	mux.HandleFunc("/moves", s.movesHandler)
	mux.HandleFunc("/validate", s.validateHandler)
	mux.HandleFunc("/wordcheck", s.wordcheckHandler)
	mux.HandleFunc("/match", s.matchHandler)

	log.Info().Str("port", cfg.Port).Msg("listening")
	// Start the server loop
	return http.ListenAndServe(":"+cfg.Port, mux)
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("moves-service-failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
