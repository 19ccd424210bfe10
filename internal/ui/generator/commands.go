// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/megasena-tui/internal/megasena"
	"github.com/jeranaias/megasena-tui/internal/model"
)

// Service is the part of the Mega-Sena service the screen talks to.
// *megasena.Client satisfies it.
type Service interface {
	Status(ctx context.Context) (*model.ServerStatus, error)
	GenerateGames(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error)
}

var _ Service = (*megasena.Client)(nil)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// CheckStatusCmd creates a command that runs the startup status check.
func CheckStatusCmd(ctx context.Context, svc Service) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return StatusResultMsg{Err: megasena.ErrUnreachable}
		}
		status, err := svc.Status(ctx)
		return StatusResultMsg{Status: status, Err: err}
	}
}

// GenerateCmd creates a command that sends one generate request.
// There is no timeout; the request is abandoned only when ctx ends.
func GenerateCmd(ctx context.Context, svc Service, req model.GenerationRequest) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return GenerateResultMsg{Request: req, Err: megasena.ErrFault}
		}
		result, err := svc.GenerateGames(ctx, req)
		if err != nil {
			return GenerateResultMsg{Request: req, Err: err}
		}
		return GenerateResultMsg{Request: req, Result: result}
	}
}
