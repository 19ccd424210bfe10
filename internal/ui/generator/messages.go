// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"github.com/jeranaias/megasena-tui/internal/megasena"
	"github.com/jeranaias/megasena-tui/internal/model"
)

// =============================================================================
// SERVICE MESSAGES
// =============================================================================

// StatusResultMsg carries the outcome of the startup status check.
// Err is non-nil when the service could not be reached or answered badly.
type StatusResultMsg struct {
	Status *model.ServerStatus
	Err    error
}

// GenerateResultMsg carries the outcome of one generate request.
// Exactly one of Result and Err is set.
type GenerateResultMsg struct {
	Request model.GenerationRequest
	Result  *model.GenerationResult
	Err     error
}

// =============================================================================
// USER-FACING TEXT
// =============================================================================

const (
	// MsgUnreachable is shown when the status check fails.
	MsgUnreachable = "Erro: Não foi possível conectar ao servidor. Verifique se o servidor está rodando."
	// MsgNoData is shown when the service has no historical data loaded.
	MsgNoData = "Aviso: Base de dados não carregada. O sistema funcionará com números aleatórios."
	// generateErrorPrefix precedes every generate failure message.
	generateErrorPrefix = "Erro ao gerar jogos: "
)

// GenerateErrorText formats a generate failure for the banner.
func GenerateErrorText(err error) string {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = megasena.DefaultGenerateErrorMessage
	}
	return generateErrorPrefix + msg
}
