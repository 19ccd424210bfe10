// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable UI pieces of the Mega-Sena
generator screen.

Each component is a small value type built on Bubble Tea and Lip Gloss.
Components own their own tick messages and ignore ticks that belong to a
previous run, so a parent model can forward messages to them blindly.

# Components

Stopwatch (stopwatch.go) - Elapsed time of the in-flight request, shown
with one decimal ("Tempo: 1.5s").

Spinner (spinner.go) - ASCII loading indicator shown next to the stopwatch.

ErrorBanner (error_banner.go) - A single error or warning banner. Transient
banners dismiss themselves after a few seconds; persistent ones stay until
replaced.

CardList (card_list.go) - Generated cards with numbered balls, probability
and timing summary. Cards can enter with a staggered animation.

StatusBar (statusbar.go) - Bottom line with the screen state, historical
data summary and the number of games generated this session.

# Usage

	cards := components.NewCardList()
	cards.UseTheme(theme)
	cmd := cards.SetResults(result.Jogos, result.TempoExecucao, roundTrip, time.Now())

Every component renders through View and updates through Update, following
the Bubble Tea model.
*/
package components
