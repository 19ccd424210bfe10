// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package megasena

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeranaias/megasena-tui/internal/logging"
	"github.com/jeranaias/megasena-tui/internal/model"
)

// Service endpoints.
const (
	StatusPath   = "/status"
	GeneratePath = "/gerar-jogos"

	// RequestIDHeader carries the id that ties client and service log lines together.
	RequestIDHeader = "X-Request-ID"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is the fixed local address of the generator service.
// Uses explicit IPv4 to avoid localhost resolving to ::1 first.
const DefaultBaseURL = "http://127.0.0.1:5001"

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 64 << 10

// ClientConfig holds configuration options for the client.
type ClientConfig struct {
	// BaseURL is the service base URL (default: http://127.0.0.1:5001).
	// Not user-configurable; tests point it at a fake service.
	BaseURL string

	// Timeout for a whole request. Zero means no client-side timeout,
	// the service's own latency bounds the call.
	Timeout time.Duration

	// HTTPClient overrides the transport. Optional.
	HTTPClient *http.Client
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the generator service.
// It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a client for the default local service.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// BaseURL returns the service address this client talks to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// STATUS
// =============================================================================

// Status performs the health check. Every failure, whether transport,
// non-2xx or an undecodable body, is reported as ErrTypeUnreachable.
func (c *Client) Status(ctx context.Context) (*model.ServerStatus, error) {
	resp, log, err := c.do(ctx, http.MethodGet, StatusPath, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: ErrUnreachable.Message, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp.Body)
		return nil, &ClientError{
			Type:       ErrTypeUnreachable,
			Message:    "unexpected status from service: " + resp.Status,
			StatusCode: resp.StatusCode,
		}
	}

	var status model.ServerStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		log.Warn().Err(err).Msg("status body not decodable")
		return nil, &ClientError{
			Type:       ErrTypeUnreachable,
			Message:    "failed to decode status",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	log.Debug().Bool("dados_carregados", status.DataLoaded).Int("total_jogos_historico", status.TotalGames).Msg("status ok")
	return &status, nil
}

// =============================================================================
// GENERATE
// =============================================================================

// GenerateGames asks the service for req.Cartoes cards of req.Dezenas numbers.
// The request is validated first and never sent when out of range.
func (c *Client) GenerateGames(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &ClientError{Type: ErrTypeValidation, Cause: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeFault, Message: "failed to marshal request", Cause: err}
	}

	resp, log, err := c.do(ctx, http.MethodPost, GeneratePath, body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeFault, Message: ErrFault.Message, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := DefaultGenerateErrorMessage
		var svcErr model.ServiceError
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&svcErr); err == nil && svcErr.Error != "" {
			msg = svcErr.Error
		}
		log.Warn().Str("error", msg).Msg("service rejected generate")
		return nil, &ClientError{
			Type:       ErrTypeService,
			Message:    msg,
			StatusCode: resp.StatusCode,
		}
	}

	var result model.GenerationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{
			Type:       ErrTypeInvalidResponse,
			Message:    ErrInvalidResponse.Message,
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	log.Debug().Int("jogos", len(result.Jogos)).Float64("tempo_execucao", result.TempoExecucao).Msg("generate ok")
	return &result, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// do sends one JSON request and logs its outcome. The returned logger is
// tagged with the request id for follow-up lines.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, *zerolog.Logger, error) {
	requestID := uuid.NewString()
	log := logging.L().With().
		Str("component", "megasena").
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, &log, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug().Dur("dur", time.Since(start)).Msg("request canceled")
		} else {
			log.Error().Err(err).Dur("dur", time.Since(start)).Msg("request failed")
		}
		return nil, &log, err
	}

	log.Info().Int("status", resp.StatusCode).Dur("dur", time.Since(start)).Msg("request done")
	return resp, &log, nil
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, maxErrorBody))
}
