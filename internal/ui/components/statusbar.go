// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current state of the generator screen.
type Status int

const (
	StatusConnecting Status = iota
	StatusReady
	StatusGenerating
	StatusOffline
	StatusError
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "Conectando..."
	case StatusReady:
		return "Pronto"
	case StatusGenerating:
		return "Gerando..."
	case StatusOffline:
		return "Servidor indisponível"
	case StatusError:
		return "Erro"
	default:
		return "Desconhecido"
	}
}

// Icon returns an ASCII indicator so the state never relies on color alone.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusGenerating, StatusConnecting:
		return styles.StatusIndicators.Info
	case StatusOffline, StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom line: screen state, service summary and the
// number of games generated in this session.
type StatusBar struct {
	Status    Status
	Server    *model.ServerStatus // nil until the status check succeeds
	Generated int                 // Cards generated this session
	Width     int

	barStyle   lipgloss.Style
	okStyle    lipgloss.Style
	errorStyle lipgloss.Style
	infoStyle  lipgloss.Style
	dimStyle   lipgloss.Style
}

// NewStatusBar creates a status bar in the connecting state.
func NewStatusBar(theme *styles.Theme) StatusBar {
	s := StatusBar{
		Status:     StatusConnecting,
		okStyle:    lipgloss.NewStyle().Foreground(styles.MegaGreen).Bold(true),
		errorStyle: lipgloss.NewStyle().Foreground(styles.Rose).Bold(true),
		infoStyle:  lipgloss.NewStyle().Foreground(styles.Cyan),
		dimStyle:   lipgloss.NewStyle().Foreground(styles.TextMuted),
		barStyle:   lipgloss.NewStyle(),
	}
	if theme != nil {
		s.barStyle = theme.StatusBar
	}
	return s
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// AddGenerated counts cards from a finished request.
func (s *StatusBar) AddGenerated(n int) {
	s.Generated += n
}

func (s StatusBar) statusSection() string {
	text := s.Status.Icon() + " " + s.Status.String()
	switch s.Status {
	case StatusReady:
		return s.okStyle.Render(text)
	case StatusOffline, StatusError:
		return s.errorStyle.Render(text)
	default:
		return s.infoStyle.Render(text)
	}
}

func (s StatusBar) serverSection() string {
	if s.Server == nil {
		return ""
	}
	if !s.Server.DataLoaded {
		return s.dimStyle.Render("sem dados históricos")
	}
	text := fmtNumber(s.Server.TotalGames) + " sorteios no histórico"
	if s.Server.LastUpdate != "" {
		text += " (" + s.Server.LastUpdate + ")"
	}
	return s.dimStyle.Render(text)
}

func (s StatusBar) generatedSection() string {
	if s.Generated == 0 {
		return ""
	}
	return s.dimStyle.Render(fmtNumber(s.Generated) + " " +
		plural(s.Generated, "jogo gerado", "jogos gerados"))
}

// View renders the bar, dropping the rightmost sections that do not fit.
func (s StatusBar) View() string {
	sections := []string{s.statusSection()}
	for _, extra := range []string{s.serverSection(), s.generatedSection()} {
		if extra != "" {
			sections = append(sections, extra)
		}
	}

	sep := s.dimStyle.Render(" | ")
	line := strings.Join(sections, sep)
	if s.Width > 0 {
		inner := s.Width - s.barStyle.GetHorizontalFrameSize()
		for len(sections) > 1 && lipgloss.Width(line) > inner {
			sections = sections[:len(sections)-1]
			line = strings.Join(sections, sep)
		}
		return s.barStyle.Width(s.Width).Render(line)
	}
	return s.barStyle.Render(line)
}
