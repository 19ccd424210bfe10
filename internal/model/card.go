// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strconv"
)

// =============================================================================
// CARD
// =============================================================================

// Card is one generated combination ("jogo").
// Probabilidade is the service's percentage estimate; it is displayed
// verbatim and never recomputed here.
type Card struct {
	Numeros       []int   `json:"numeros"`
	Probabilidade float64 `json:"probabilidade"`
}

// Label returns the 1-based display title for the card at index.
func (c Card) Label(index int) string {
	return "Jogo " + strconv.Itoa(index+1)
}

// FormattedNumbers returns each number zero-padded to two digits,
// preserving the order sent by the service.
func (c Card) FormattedNumbers() []string {
	out := make([]string, len(c.Numeros))
	for i, n := range c.Numeros {
		out[i] = fmt.Sprintf("%02d", n)
	}
	return out
}

// FormattedProbability renders the probability as "<p>% chance".
func (c Card) FormattedProbability() string {
	return FormatDecimal(c.Probabilidade) + "% chance"
}

// =============================================================================
// GENERATION RESULT
// =============================================================================

// GenerationResult is the success body of POST /gerar-jogos.
type GenerationResult struct {
	Jogos         []Card  `json:"jogos"`
	TempoExecucao float64 `json:"tempo_execucao"` // Server-side processing time in seconds
	Timestamp     string  `json:"timestamp,omitempty"`
}

// ServiceError is the body the service sends with a non-success status.
type ServiceError struct {
	Error string `json:"error"`
}

// FormatDecimal prints a float using the shortest representation that
// round-trips (12.5 -> "12.5", 3 -> "3").
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
