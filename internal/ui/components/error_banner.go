// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/megasena-tui/internal/ui/styles"
	"github.com/jeranaias/megasena-tui/internal/util"
)

// =============================================================================
// BANNER TYPES
// =============================================================================

// BannerKind selects the banner colors and indicator.
type BannerKind int

const (
	// BannerError is a rose banner with the [X] indicator
	BannerError BannerKind = iota
	// BannerWarning is an amber banner with the [!] indicator
	BannerWarning
)

// TransientBannerDuration is how long a transient banner stays visible.
const TransientBannerDuration = 5 * time.Second

// Banner is the message currently occupying the slot.
type Banner struct {
	ID        int
	Message   string
	Kind      BannerKind
	Transient bool
}

// BannerDismissMsg asks the presenter to remove banner ID.
// A dismiss for a banner that was already replaced does nothing.
type BannerDismissMsg struct {
	ID int
}

// =============================================================================
// ERROR BANNER
// =============================================================================

// ErrorBanner is a single-slot message presenter. Showing a banner
// replaces whatever was visible.
type ErrorBanner struct {
	current *Banner
	nextID  int
	ttl     time.Duration
	width   int

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
}

// NewErrorBanner creates an empty presenter.
func NewErrorBanner() ErrorBanner {
	return ErrorBanner{
		nextID: 1,
		ttl:    TransientBannerDuration,
		errorStyle: lipgloss.NewStyle().
			Foreground(styles.Rose).
			Padding(0, 1),
		warningStyle: lipgloss.NewStyle().
			Foreground(styles.Amber).
			Padding(0, 1),
	}
}

// SetStyles overrides the error and warning styles.
func (b *ErrorBanner) SetStyles(errorStyle, warningStyle lipgloss.Style) {
	b.errorStyle = errorStyle
	b.warningStyle = warningStyle
}

// SetWidth sets the wrap width in columns. Zero disables wrapping.
func (b *ErrorBanner) SetWidth(width int) {
	b.width = width
}

func (b *ErrorBanner) show(message string, kind BannerKind, transient bool) Banner {
	banner := Banner{
		ID:        b.nextID,
		Message:   message,
		Kind:      kind,
		Transient: transient,
	}
	b.nextID++
	b.current = &banner
	return banner
}

// ShowTransient replaces the slot and returns the command that will
// dismiss this banner after the transient duration.
func (b *ErrorBanner) ShowTransient(message string, kind BannerKind) tea.Cmd {
	banner := b.show(message, kind, true)
	id := banner.ID
	return tea.Tick(b.ttl, func(time.Time) tea.Msg {
		return BannerDismissMsg{ID: id}
	})
}

// ShowPersistent replaces the slot with a banner that stays until replaced.
func (b *ErrorBanner) ShowPersistent(message string, kind BannerKind) {
	b.show(message, kind, false)
}

// Dismiss removes banner id if it is still the visible one.
func (b *ErrorBanner) Dismiss(id int) bool {
	if b.current == nil || b.current.ID != id {
		return false
	}
	b.current = nil
	return true
}

// Clear removes any banner.
func (b *ErrorBanner) Clear() {
	b.current = nil
}

// Current returns the visible banner.
func (b ErrorBanner) Current() (Banner, bool) {
	if b.current == nil {
		return Banner{}, false
	}
	return *b.current, true
}

// Visible reports whether a banner is shown.
func (b ErrorBanner) Visible() bool {
	return b.current != nil
}

// Update handles dismiss messages.
func (b ErrorBanner) Update(msg tea.Msg) (ErrorBanner, tea.Cmd) {
	if dismiss, ok := msg.(BannerDismissMsg); ok {
		b.Dismiss(dismiss.ID)
	}
	return b, nil
}

// View renders the banner, wrapped to the configured width.
func (b ErrorBanner) View() string {
	if b.current == nil {
		return ""
	}

	style := b.errorStyle
	indicator := styles.StatusIndicators.Error
	if b.current.Kind == BannerWarning {
		style = b.warningStyle
		indicator = styles.StatusIndicators.Warning
	}

	text := indicator + " " + b.current.Message
	if b.width > 0 {
		inner := b.width - style.GetHorizontalFrameSize()
		if inner < 10 {
			inner = 10
		}
		text = strings.Join(util.WrapWidth(text, inner), "\n")
		style = style.Width(b.width - style.GetHorizontalBorderSize())
	}
	return style.Render(text)
}
