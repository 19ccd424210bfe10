// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package generator is the Mega-Sena game generator screen.

It owns the whole interactive flow: a status check on startup, the two
numeric inputs, the generate action and the rendering of the returned
cards.

# Flow

  - Init issues one status check. A failure shows a persistent error and
    disables generation for the session; a service without historical data
    shows a transient warning and stays enabled.
  - Generate validates the inputs locally. Invalid input shows a transient
    error and nothing else happens.
  - A valid request enters loading through RequestState.Begin, which starts
    the stopwatch and the spinner together and clears previous results.
  - The result message always releases the loading state, then either
    renders the cards or shows a persistent error.

# Concurrency

Network calls run inside tea.Cmd functions and return exactly one message.
The generate key is ignored while loading, so at most one request is ever in
flight. Timer, spinner and animation ticks carry run counters and are
dropped when stale.
*/
package generator
