// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the Mega-Sena
// generation service.
//
// This package defines the core domain types used throughout the application
// for requesting games, representing generated cards, and reading the service
// health status. Field names on the wire follow the service contract
// (dezenas, cartoes, jogos, numeros, probabilidade).
//
// # Key Types
//
//   - GenerationRequest: How many numbers per card and how many cards to generate
//   - RangeError: Validation failure for an out-of-range request field
//   - Card: One generated combination plus its probability estimate
//   - GenerationResult: Cards plus the server-reported execution time
//   - ServerStatus: Health information returned by GET /status
//
// # Usage
//
// Validate user input before contacting the service:
//
//	req, err := model.ParseRequest("6", "3")
//	if err != nil {
//	    return err // *model.RangeError with the user-facing message
//	}
//
// Render a card:
//
//	fmt.Println(card.Label(0), card.FormattedProbability())
//	fmt.Println(strings.Join(card.FormattedNumbers(), " "))
package model
