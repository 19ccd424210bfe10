// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package megasena provides the HTTP client for the Mega-Sena generator service.
//
// The service runs locally and owns every statistical decision: which
// numbers go on a card and how likely the card is. This package only
// validates requests, moves JSON over HTTP and classifies failures.
//
// # Key Types
//
//   - Client: HTTP client for the generator service
//   - ClientConfig: base address, timeout and HTTP client override
//   - ClientError: typed failure with an ErrorType for handling
//
// # Usage
//
//	client := megasena.NewClient()
//	status, err := client.Status(ctx)
//	if err != nil {
//	    // service unreachable
//	}
//	result, err := client.GenerateGames(ctx, model.GenerationRequest{Dezenas: 6, Cartoes: 2})
//
// # Errors
//
// Use errors.Is with the sentinels to branch on failure kind:
//
//	switch {
//	case errors.Is(err, megasena.ErrService):
//	    // message came from the service, show it verbatim
//	case errors.Is(err, megasena.ErrFault):
//	    // transport problem
//	}
package megasena
