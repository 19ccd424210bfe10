// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package megasena

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the generator service client.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int // HTTP status when a response was received, 0 otherwise
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches any ClientError of the same Type, so the sentinels below work
// with errors.Is regardless of message or cause.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeUnreachable: the status check failed in any way.
	ErrTypeUnreachable
	// ErrTypeService: the service answered non-2xx; Message is its own text.
	ErrTypeService
	// ErrTypeFault: the request never produced a response.
	ErrTypeFault
	// ErrTypeInvalidResponse: a 2xx body that could not be decoded.
	ErrTypeInvalidResponse
	// ErrTypeValidation: the request was rejected before being sent.
	ErrTypeValidation
)

// String returns a short name for logs.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeUnreachable:
		return "unreachable"
	case ErrTypeService:
		return "service"
	case ErrTypeFault:
		return "fault"
	case ErrTypeInvalidResponse:
		return "invalid_response"
	case ErrTypeValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// DefaultGenerateErrorMessage is used when a failed generate response
// carries no readable error field.
const DefaultGenerateErrorMessage = "Erro ao gerar jogos"

// Sentinel errors for easy checking.
var (
	ErrUnreachable     = &ClientError{Type: ErrTypeUnreachable, Message: "servidor indisponível"}
	ErrService         = &ClientError{Type: ErrTypeService, Message: DefaultGenerateErrorMessage}
	ErrFault           = &ClientError{Type: ErrTypeFault, Message: "falha na comunicação com o servidor"}
	ErrInvalidResponse = &ClientError{Type: ErrTypeInvalidResponse, Message: "resposta inválida do servidor"}
	ErrValidation      = &ClientError{Type: ErrTypeValidation, Message: "requisição inválida"}
)

// TypeOf returns the ErrorType of err, or ErrTypeUnknown.
func TypeOf(err error) ErrorType {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type
	}
	return ErrTypeUnknown
}
