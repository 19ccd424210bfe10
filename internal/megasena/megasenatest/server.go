// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package megasenatest provides a fake generator service for tests.
//
// The fake serves canned /status and /gerar-jogos responses and records
// every request it receives. It never draws numbers: cards are fixed
// sequences so assertions stay deterministic.
package megasenatest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jeranaias/megasena-tui/internal/model"
)

// RecordedRequest is one request received by the fake.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Server is a fake generator service backed by httptest.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	status     model.ServerStatus
	statusCode int
	statusBody string

	result       *model.GenerationResult
	generateCode int
	generateBody string // raw body sent instead of JSON when non-empty
	delay        time.Duration

	requests []RecordedRequest
}

// NewServer starts a fake service that reports loaded data and answers
// every valid generate request with 200. Close it when done.
func NewServer() *Server {
	s := &Server{
		status: model.ServerStatus{
			Status:     "online",
			DataLoaded: true,
			TotalGames: 2700,
			LastUpdate: "2024-01-02 10:00:00",
		},
		statusCode:   http.StatusOK,
		generateCode: http.StatusOK,
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Get("/status", s.handleStatus)
	r.Post("/gerar-jogos", s.handleGenerate)

	s.Server = httptest.NewServer(r)
	return s
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetStatus replaces the /status response.
func (s *Server) SetStatus(status model.ServerStatus, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.statusCode = code
	s.statusBody = ""
}

// SetStatusRaw makes /status answer code with body verbatim.
func (s *Server) SetStatusRaw(code int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCode = code
	s.statusBody = body
}

// SetResult makes /gerar-jogos answer 200 with result.
func (s *Server) SetResult(result model.GenerationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
	s.generateCode = http.StatusOK
	s.generateBody = ""
}

// SetGenerateError makes /gerar-jogos answer code with {"error": message}.
func (s *Server) SetGenerateError(code int, message string) {
	body, _ := json.Marshal(model.ServiceError{Error: message})
	s.SetGenerateRaw(code, string(body))
}

// SetGenerateRaw makes /gerar-jogos answer code with body verbatim.
func (s *Server) SetGenerateRaw(code int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generateCode = code
	s.generateBody = body
}

// SetDelay holds every response for d.
func (s *Server) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// =============================================================================
// INSPECTION
// =============================================================================

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// GenerateRequests returns the decoded bodies of every /gerar-jogos call.
func (s *Server) GenerateRequests() []model.GenerationRequest {
	var out []model.GenerationRequest
	for _, r := range s.Requests() {
		if r.Path != "/gerar-jogos" {
			continue
		}
		var req model.GenerationRequest
		if err := json.Unmarshal(r.Body, &req); err == nil {
			out = append(out, req)
		}
	}
	return out
}

// Count returns how many requests hit path.
func (s *Server) Count(path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		delay := s.delay
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status, code, raw := s.status, s.statusCode, s.statusBody
	s.mu.Unlock()

	if raw != "" {
		w.WriteHeader(code)
		_, _ = io.WriteString(w, raw)
		return
	}
	writeJSON(w, code, status)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	code, raw, canned := s.generateCode, s.generateBody, s.result
	s.mu.Unlock()

	if raw != "" || code != http.StatusOK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, raw)
		return
	}

	var req model.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ServiceError{Error: "JSON inválido"})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ServiceError{Error: err.Error()})
		return
	}

	if canned != nil {
		writeJSON(w, http.StatusOK, canned)
		return
	}
	writeJSON(w, http.StatusOK, FixedResult(req))
}

// FixedResult builds the deterministic answer for req: card k holds
// k+1 .. k+Dezenas with a 50% probability.
func FixedResult(req model.GenerationRequest) model.GenerationResult {
	jogos := make([]model.Card, req.Cartoes)
	for k := range jogos {
		nums := make([]int, req.Dezenas)
		for i := range nums {
			nums[i] = k + i + 1
		}
		jogos[k] = model.Card{Numeros: nums, Probabilidade: 50}
	}
	return model.GenerationResult{
		Jogos:         jogos,
		TempoExecucao: 0.25,
		Timestamp:     "2024-01-02 10:00:00",
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
