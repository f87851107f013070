// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the analysis engine over HTTP. The server is a thin
// transport shim: every endpoint delegates to the same engine the CLI uses
// and holds no state between requests.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"formscan/internal/engine"
	"formscan/internal/formatters"
	"formscan/internal/version"

	// Import formatters to register them
	_ "formscan/internal/formatters/csv"
	_ "formscan/internal/formatters/json"
	_ "formscan/internal/formatters/text"
	_ "formscan/internal/formatters/yaml"
)

// Server hosts the analysis API.
type Server struct {
	port   string
	engine *engine.Engine
	server *http.Server
}

// AnalyzeRequest is the POST /api/analyze body.
type AnalyzeRequest struct {
	DocumentText      string `json:"document_text"`
	FormNumberHint    string `json:"form_number_hint,omitempty"`
	IncludeRegulatory *bool  `json:"include_regulatory,omitempty"`
	Format            string `json:"format,omitempty"`
}

// FormInfo is one entry of the GET /api/forms listing.
type FormInfo struct {
	FormNumber  string `json:"form_number"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

// NewServer creates a server bound to the given engine.
func NewServer(port string, eng *engine.Engine) *Server {
	return &Server{port: port, engine: eng}
}

// Start runs the server until Stop or a listen failure. When the requested
// port is taken it walks forward through the next nine ports, matching the
// behavior operators expect from local tooling.
func (s *Server) Start() error {
	router := s.routes()

	var lastErr error
	for i := 0; i < 10; i++ {
		port := s.port
		if i > 0 {
			port = nextPort(s.port, i)
		}

		listener, err := net.Listen("tcp", ":"+port)
		if err != nil {
			lastErr = err
			continue
		}

		s.server = &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		fmt.Printf("formscan API listening on http://localhost:%s\n", port)
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("no available port starting from %s: %w", s.port, lastErr)
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/forms", s.handleForms)
	r.Get("/api/health", s.handleHealth)
	return r
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 10<<20)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if body.DocumentText == "" {
		writeError(w, http.StatusBadRequest, "document_text is required")
		return
	}

	req := engine.NewRequest(body.DocumentText)
	req.FormNumberHint = body.FormNumberHint
	if body.IncludeRegulatory != nil {
		req.IncludeRegulatory = *body.IncludeRegulatory
	}

	result := s.engine.Analyze(req)

	format := body.Format
	if format == "" || format == "json" {
		writeJSON(w, http.StatusOK, result)
		return
	}

	content, mimeType, filename, err := formatters.ExportForWeb(format, result, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	templates := s.engine.Registry().All()
	forms := make([]FormInfo, 0, len(templates))
	for _, t := range templates {
		forms = append(forms, FormInfo{
			FormNumber:  t.FormNumber,
			Title:       t.Title,
			Category:    t.Category,
			Subcategory: t.Subcategory,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(forms),
		"forms": forms,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.Version,
		"forms":   s.engine.Registry().Count(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// nextPort computes the i-th fallback port after the requested one.
func nextPort(base string, i int) string {
	var p int
	if _, err := fmt.Sscanf(base, "%d", &p); err != nil {
		p = 8080
	}
	return fmt.Sprintf("%d", p+i)
}
