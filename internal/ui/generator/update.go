// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/megasena-tui/internal/megasena"
	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles every message of the screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.banner.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StatusResultMsg:
		return m.handleStatus(msg)

	case GenerateResultMsg:
		return m.handleGenerateResult(msg)

	case components.BannerDismissMsg:
		m.banner, _ = m.banner.Update(msg)
		return m, nil

	case components.StopwatchTickMsg, spinner.TickMsg:
		return m, m.state.Update(msg)

	case components.CardTickMsg:
		var cmd tea.Cmd
		m.cards, cmd = m.cards.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Generate):
		return m.generate()

	case key.Matches(msg, m.keys.Next):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		if !m.state.Loading() {
			m.cards.Clear()
			m.results.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.syncResults()
		m.results.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.syncResults()
		m.results.ViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The inputs only accept digits.
	if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.dezenas.Blur()
	m.cartoes.Blur()
	switch f {
	case focusDezenas:
		return m.dezenas.Focus()
	case focusCartoes:
		return m.cartoes.Focus()
	}
	return nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusDezenas:
		m.dezenas, cmd = m.dezenas.Update(msg)
	case focusCartoes:
		m.cartoes, cmd = m.cartoes.Update(msg)
	}
	return m, cmd
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// =============================================================================
// STATUS CHECK
// =============================================================================

func (m Model) handleStatus(msg StatusResultMsg) (tea.Model, tea.Cmd) {
	if m.statusChecked {
		return m, nil
	}
	m.statusChecked = true

	if msg.Err != nil || msg.Status == nil {
		m.disabled = true
		m.banner.ShowPersistent(MsgUnreachable, components.BannerError)
		m.log.Error().Err(msg.Err).Msg("status check failed, generation disabled")
		return m, nil
	}

	m.status = msg.Status
	m.log.Info().
		Str("status", msg.Status.Status).
		Bool("dados_carregados", msg.Status.DataLoaded).
		Int("total_jogos_historico", msg.Status.TotalGames).
		Msg("status check ok")

	if !msg.Status.DataLoaded {
		cmd := m.banner.ShowTransient(MsgNoData, components.BannerWarning)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// GENERATE
// =============================================================================

func (m Model) generate() (tea.Model, tea.Cmd) {
	if !m.GenerateEnabled() {
		return m, nil
	}

	req, err := model.ParseRequest(m.dezenas.Value(), m.cartoes.Value())
	if err != nil {
		m.log.Debug().Err(err).Msg("generate rejected")
		cmd := m.banner.ShowTransient(err.Error(), components.BannerError)
		return m, cmd
	}

	now := m.now()
	release, cmd, err := m.state.Begin(now)
	if err != nil {
		return m, nil
	}
	m.release = release
	m.startedAt = now
	m.cards.Clear()
	m.results.GotoTop()

	m.log.Info().
		Int("dezenas", req.Dezenas).
		Int("cartoes", req.Cartoes).
		Msg("generate started")

	return m, tea.Batch(cmd, GenerateCmd(m.ctx, m.svc, req))
}

func (m Model) handleGenerateResult(msg GenerateResultMsg) (tea.Model, tea.Cmd) {
	if m.release == nil {
		return m, nil
	}

	now := m.now()
	roundTrip := now.Sub(m.startedAt)
	m.release(now)
	m.release = nil

	err := msg.Err
	if err == nil && msg.Result == nil {
		err = megasena.ErrInvalidResponse
	}
	if err != nil {
		m.banner.ShowPersistent(GenerateErrorText(err), components.BannerError)
		m.log.Error().
			Err(err).
			Str("type", megasena.TypeOf(err).String()).
			Dur("round_trip", roundTrip).
			Msg("generate failed")
		return m, nil
	}

	m.log.Info().
		Int("jogos", len(msg.Result.Jogos)).
		Float64("tempo_execucao", msg.Result.TempoExecucao).
		Dur("round_trip", roundTrip).
		Msg("generate finished")

	m.bar.AddGenerated(len(msg.Result.Jogos))
	cmd := m.cards.SetResults(msg.Result.Jogos, msg.Result.TempoExecucao, roundTrip, now)
	return m, cmd
}
