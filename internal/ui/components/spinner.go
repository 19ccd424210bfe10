// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is the loading indicator shown next to the stopwatch.
type Spinner struct {
	spinner spinner.Model
	config  styles.SpinnerConfig
	message string
	active  bool

	frameStyle lipgloss.Style
}

// NewSpinner creates an inactive ASCII spinner.
func NewSpinner() Spinner {
	s := Spinner{
		config:  styles.LineSpinner,
		message: "Gerando jogos",

		frameStyle: lipgloss.NewStyle().Foreground(styles.Purple),
	}
	s.spinner = s.newModel()
	return s
}

func (s Spinner) newModel() spinner.Model {
	m := spinner.New()
	m.Spinner = spinner.Spinner{
		Frames: s.config.Frames,
		FPS:    s.config.Duration(),
	}
	return m
}

// SetConfig changes the frames used on the next Start.
func (s *Spinner) SetConfig(config styles.SpinnerConfig) {
	s.config = config
}

// SetStyle sets the style of the animated frame.
func (s *Spinner) SetStyle(style lipgloss.Style) {
	s.frameStyle = style
}

// SetMessage sets the text displayed next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// Start activates the spinner. A fresh model (with a fresh id) is used
// each time so ticks left over from a previous run are ignored.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	s.spinner = s.newModel()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.active = false
}

// IsActive returns whether the spinner is currently running.
func (s Spinner) IsActive() bool {
	return s.active
}

// Update handles spinner ticks while active.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner frame and message, or nothing when inactive.
func (s Spinner) View() string {
	if !s.active {
		return ""
	}

	frame := s.frameStyle.Render(s.spinner.View())
	message := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(s.message + "...")

	return frame + " " + message
}
