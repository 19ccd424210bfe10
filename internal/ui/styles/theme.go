// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeDark  = "dark"
	ModeLight = "light"
	ModeAuto  = "auto"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	InputLabel     lipgloss.Style
	InputBox       lipgloss.Style
	InputBoxFocus  lipgloss.Style
	InputHint      lipgloss.Style
	Button         lipgloss.Style
	ButtonFocus    lipgloss.Style
	ButtonDisabled lipgloss.Style

	// ==========================================================================
	// LOADING STYLES
	// ==========================================================================

	Spinner         lipgloss.Style
	StopwatchIdle   lipgloss.Style
	StopwatchActive lipgloss.Style

	// ==========================================================================
	// BANNER STYLES
	// ==========================================================================

	ErrorBanner   lipgloss.Style
	WarningBanner lipgloss.Style

	// ==========================================================================
	// RESULT STYLES
	// ==========================================================================

	TimingSummary   lipgloss.Style
	Card            lipgloss.Style
	CardFaint       lipgloss.Style
	CardTitle       lipgloss.Style
	CardProbability lipgloss.Style
	Ball            lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme for mode ("dark", "light" or "auto").
// Dark and light force the background detection; auto asks the terminal.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch mode {
	case ModeLight:
		isDark = false
	case ModeAuto:
		isDark = termenv.HasDarkBackground()
	default:
		isDark = true
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(MegaGreen).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(MegaGreen)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Form
	t.InputLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputBoxFocus = t.InputBox.
		BorderForeground(Cyan)

	t.InputHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Button = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(MegaGreenDeep).
		Bold(true).
		Padding(0, 2)

	t.ButtonFocus = t.Button.
		Background(MegaGreen).
		Underline(true)

	t.ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Strikethrough(true).
		Padding(0, 2)

	// Loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.StopwatchIdle = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StopwatchActive = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Banners
	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(Rose).
		Background(RoseDeep).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(Rose).
		Padding(0, 1)

	t.WarningBanner = lipgloss.NewStyle().
		Foreground(Amber).
		Background(AmberDeep).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(Amber).
		Padding(0, 1)

	// Results
	t.TimingSummary = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(MegaGreen).
		Padding(0, 1)

	t.CardFaint = t.Card.
		BorderForeground(Overlay).
		Faint(true)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.CardProbability = lipgloss.NewStyle().
		Foreground(Purple)

	t.Ball = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(MegaGreenDeep).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	// Footer
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// GetLayoutMode returns the current layout mode based on width.
// The generator form stacks its inputs in LayoutNarrow.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}
