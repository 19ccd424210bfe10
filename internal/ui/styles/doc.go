// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the megasena TUI.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values so the same palette works on
light and dark terminals. MegaGreen is the brand color used for cards and
number balls; Rose and Amber back the error and warning banners.

Every status rendered by the CLI carries a shape indicator as well:

	StatusIndicators.Success - [OK]
	StatusIndicators.Error   - [X]
	StatusIndicators.Warning - [!]
	StatusIndicators.Info    - [i]

# Theme System (theme.go)

	theme := styles.NewTheme(cfg.UI.Theme)
	card := theme.Card.Render(body)

# Animation System (animations.go)

Easing functions and the card entrance transition:

	p := styles.CardEntrance.Progress(elapsed) // 0..1, EaseOutCubic
*/
package styles
