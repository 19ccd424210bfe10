// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/components"
	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the screen: header, form, loading line, banner, results
// and help. The banner sits immediately above the results.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	top := m.topView()
	footer := m.footerView()
	results := m.cards.View()

	if m.height > 0 && results != "" {
		vp := m.results
		vp.Width = m.width
		vp.Height = m.resultsHeight(top, footer)
		vp.SetContent(results)
		results = vp.View()
	}

	sections := []string{top}
	if results != "" {
		sections = append(sections, results)
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) topView() string {
	sections := []string{m.headerView(), m.formView()}
	if line := m.loadingView(); line != "" {
		sections = append(sections, line)
	}
	if banner := m.banner.View(); banner != "" {
		sections = append(sections, banner)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) resultsHeight(top, footer string) int {
	h := m.height - lipgloss.Height(top) - lipgloss.Height(footer)
	if h < 3 {
		h = 3
	}
	return h
}

// syncResults loads the current results into the viewport so scrolling
// is clamped against the real content.
func (m *Model) syncResults() {
	top := m.topView()
	footer := m.footerView()
	m.results.Width = m.width
	m.results.Height = m.resultsHeight(top, footer)
	m.results.SetContent(m.cards.View())
}

func (m Model) footerView() string {
	bar := m.bar
	bar.Server = m.status
	bar.SetWidth(m.width)
	switch {
	case m.disabled:
		bar.Status = components.StatusOffline
	case !m.statusChecked:
		bar.Status = components.StatusConnecting
	case m.state.Loading():
		bar.Status = components.StatusGenerating
	default:
		bar.Status = components.StatusReady
		if b, ok := m.banner.Current(); ok && b.Kind == components.BannerError {
			bar.Status = components.StatusError
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar.View(), m.help.View(m.keys))
}

func (m Model) headerView() string {
	title := m.theme.HeaderTitle.Render("Mega-Sena")
	subtitle := m.theme.HeaderSubtitle.Render("Gerador de Jogos")

	line := title + "  " + subtitle
	if info := m.statusLine(); info != "" {
		line += "  " + info
	}
	return m.theme.Header.Render(line)
}

func (m Model) statusLine() string {
	switch {
	case m.disabled:
		return styles.RenderError("servidor indisponível")
	case m.status == nil:
		return ""
	case !m.status.DataLoaded:
		return styles.RenderWarning("sem dados históricos")
	}

	info := fmt.Sprintf("%d jogos no histórico", m.status.TotalGames)
	if m.status.LastUpdate != "" {
		info += ", atualizado em " + m.status.LastUpdate
	}
	return styles.RenderSuccess(info)
}

func (m Model) formView() string {
	dezenas := m.fieldView(
		fmt.Sprintf("Dezenas (%d-%d)", model.MinDezenas, model.MaxDezenas),
		m.dezenas.View(), m.focus == focusDezenas)
	cartoes := m.fieldView(
		fmt.Sprintf("Cartões (%d-%d)", model.MinCartoes, model.MaxCartoes),
		m.cartoes.View(), m.focus == focusCartoes)
	button := m.buttonView()

	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return lipgloss.JoinVertical(lipgloss.Left, dezenas, cartoes, button)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, dezenas, "  ", cartoes, "  ", button)
}

func (m Model) fieldView(label, input string, focused bool) string {
	box := m.theme.InputBox
	if focused {
		box = m.theme.InputBoxFocus
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.InputLabel.Render(label),
		box.Render(input),
	)
}

func (m Model) buttonView() string {
	label := "Gerar Jogos"
	switch {
	case !m.GenerateEnabled():
		return m.theme.ButtonDisabled.Render(label)
	case m.focus == focusButton:
		return m.theme.ButtonFocus.Render(label)
	}
	return m.theme.Button.Render(label)
}

// loadingView shows the spinner while loading and the stopwatch once a
// request has been made.
func (m Model) loadingView() string {
	var parts []string
	if spin := m.state.SpinnerView(); spin != "" {
		parts = append(parts, spin)
	}
	if m.state.TimerRunning() || m.state.Elapsed() > 0 {
		parts = append(parts, m.state.StopwatchView())
	}
	return strings.Join(parts, "  ")
}
