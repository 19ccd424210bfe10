// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// BOUNDS
// =============================================================================

const (
	// MinDezenas is the smallest amount of numbers a card may contain.
	MinDezenas = 6
	// MaxDezenas is the largest amount of numbers a card may contain.
	MaxDezenas = 12

	// MinCartoes is the smallest amount of cards per request.
	MinCartoes = 1
	// MaxCartoes is the largest amount of cards per request.
	MaxCartoes = 10
)

// Field names used in RangeError.
const (
	FieldDezenas = "dezenas"
	FieldCartoes = "cartoes"
)

// =============================================================================
// GENERATION REQUEST
// =============================================================================

// GenerationRequest is the body of POST /gerar-jogos.
type GenerationRequest struct {
	Dezenas int `json:"dezenas"` // Numbers per card, [6,12]
	Cartoes int `json:"cartoes"` // Cards to generate, [1,10]
}

// Validate checks both counts against their bounds.
// Dezenas is checked first, so a request with both fields out of range
// reports the dezenas error.
func (r GenerationRequest) Validate() error {
	if r.Dezenas < MinDezenas || r.Dezenas > MaxDezenas {
		return &RangeError{Field: FieldDezenas, Min: MinDezenas, Max: MaxDezenas}
	}
	if r.Cartoes < MinCartoes || r.Cartoes > MaxCartoes {
		return &RangeError{Field: FieldCartoes, Min: MinCartoes, Max: MaxCartoes}
	}
	return nil
}

// ParseRequest builds a validated request from raw text input.
// Text that is not an integer fails with the same RangeError as an
// out-of-range value for that field.
func ParseRequest(dezenasText, cartoesText string) (GenerationRequest, error) {
	dezenas, err := strconv.Atoi(strings.TrimSpace(dezenasText))
	if err != nil {
		return GenerationRequest{}, &RangeError{Field: FieldDezenas, Min: MinDezenas, Max: MaxDezenas, Cause: err}
	}
	cartoes, err := strconv.Atoi(strings.TrimSpace(cartoesText))
	if err != nil {
		// Dezenas still takes precedence when both are wrong.
		if verr := (GenerationRequest{Dezenas: dezenas, Cartoes: MinCartoes}).Validate(); verr != nil {
			return GenerationRequest{}, verr
		}
		return GenerationRequest{}, &RangeError{Field: FieldCartoes, Min: MinCartoes, Max: MaxCartoes, Cause: err}
	}

	req := GenerationRequest{Dezenas: dezenas, Cartoes: cartoes}
	if err := req.Validate(); err != nil {
		return GenerationRequest{}, err
	}
	return req, nil
}

// =============================================================================
// RANGE ERROR
// =============================================================================

// RangeError reports a request field outside its inclusive bounds.
// Error returns the exact message shown to the user.
type RangeError struct {
	Field string
	Min   int
	Max   int
	Cause error // set when the input was not a number at all
}

func (e *RangeError) Error() string {
	switch e.Field {
	case FieldDezenas:
		return fmt.Sprintf("Quantidade de dezenas deve ser entre %d e %d", e.Min, e.Max)
	case FieldCartoes:
		return fmt.Sprintf("Quantidade de cartões deve ser entre %d e %d", e.Min, e.Max)
	default:
		return fmt.Sprintf("%s deve ser entre %d e %d", e.Field, e.Min, e.Max)
	}
}

func (e *RangeError) Unwrap() error {
	return e.Cause
}
