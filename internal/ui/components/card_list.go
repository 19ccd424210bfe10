// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// CardOffsetLines is how far below its resting place a card starts.
const CardOffsetLines = 2

// CardTickMsg advances the entrance animation of result set Run.
type CardTickMsg struct {
	Run  int
	Time time.Time
}

// =============================================================================
// CARD LIST
// =============================================================================

// CardList renders the timing summary and one card per generated game.
// Card i appears at i × styles.CardStagger and slides up into place over
// styles.CardEntrance, drawn faint until it settles.
type CardList struct {
	cards      []model.Card
	serverTime float64
	roundTrip  time.Duration

	animate bool
	run     int
	start   time.Time
	now     time.Time

	summaryStyle lipgloss.Style
	cardStyle    lipgloss.Style
	faintStyle   lipgloss.Style
	titleStyle   lipgloss.Style
	probStyle    lipgloss.Style
	ballStyle    lipgloss.Style
}

// NewCardList creates an empty list with animation enabled.
func NewCardList() CardList {
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.MegaGreen).
		Padding(0, 1)

	return CardList{
		animate:      true,
		summaryStyle: lipgloss.NewStyle().Foreground(styles.TextSecondary),
		cardStyle:    card,
		faintStyle:   card.BorderForeground(styles.Overlay).Faint(true),
		titleStyle:   lipgloss.NewStyle().Bold(true),
		probStyle:    lipgloss.NewStyle().Foreground(styles.Purple),
		ballStyle:    lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginRight(1),
	}
}

// UseTheme takes the result styles from theme.
func (c *CardList) UseTheme(theme *styles.Theme) {
	c.summaryStyle = theme.TimingSummary
	c.cardStyle = theme.Card
	c.faintStyle = theme.CardFaint
	c.titleStyle = theme.CardTitle
	c.probStyle = theme.CardProbability
	c.ballStyle = theme.Ball
}

// SetAnimate enables or disables the entrance animation.
func (c *CardList) SetAnimate(animate bool) {
	c.animate = animate
}

// Clear removes all results. Pending animation ticks become stale.
func (c *CardList) Clear() {
	c.run++
	c.cards = nil
	c.serverTime = 0
	c.roundTrip = 0
}

// SetResults replaces the list. serverTime is the service-reported
// processing time in seconds; roundTrip is measured by the caller.
// Returns the first animation tick, or nil when animation is off.
func (c *CardList) SetResults(cards []model.Card, serverTime float64, roundTrip time.Duration, now time.Time) tea.Cmd {
	c.run++
	c.cards = cards
	c.serverTime = serverTime
	c.roundTrip = roundTrip
	c.start = now
	c.now = now

	if !c.animate || c.settled() {
		return nil
	}
	return c.tick()
}

// Len returns the number of cards held.
func (c CardList) Len() int {
	return len(c.cards)
}

// HasResults reports whether anything is shown.
func (c CardList) HasResults() bool {
	return len(c.cards) > 0
}

// Animating reports whether some card has not settled yet.
func (c CardList) Animating() bool {
	return c.animate && c.HasResults() && !c.settled()
}

func (c CardList) settled() bool {
	if len(c.cards) == 0 {
		return true
	}
	last := time.Duration(len(c.cards)-1)*styles.CardStagger + styles.CardEntrance.Duration
	return c.now.Sub(c.start) >= last
}

func (c CardList) tick() tea.Cmd {
	run := c.run
	return tea.Tick(styles.AnimationFrame, func(t time.Time) tea.Msg {
		return CardTickMsg{Run: run, Time: t}
	})
}

// Update advances the animation on a current tick.
func (c CardList) Update(msg tea.Msg) (CardList, tea.Cmd) {
	tick, ok := msg.(CardTickMsg)
	if !ok || tick.Run != c.run || !c.animate {
		return c, nil
	}

	c.now = tick.Time
	if c.settled() {
		return c, nil
	}
	return c, c.tick()
}

// cardPhase reports whether card i is visible, its remaining line offset
// and whether it is still faint.
func (c CardList) cardPhase(i int) (visible bool, offset int, faint bool) {
	if !c.animate {
		return true, 0, false
	}

	elapsed := c.now.Sub(c.start) - time.Duration(i)*styles.CardStagger
	if elapsed < 0 {
		return false, 0, false
	}

	p := styles.CardEntrance.Progress(elapsed)
	offset = int(float64(CardOffsetLines)*(1-p) + 0.5)
	return true, offset, p < 1
}

// TimingSummary returns the two timing lines, unstyled.
func (c CardList) TimingSummary() []string {
	return []string{
		"Tempo de processamento no servidor: " + model.FormatDecimal(c.serverTime) + " segundos",
		fmt.Sprintf("Tempo total (incluindo rede): %.2f segundos", c.roundTrip.Seconds()),
	}
}

// RenderCard draws one card without animation state.
func (c CardList) RenderCard(index int, card model.Card, faint bool) string {
	title := c.titleStyle.Render(card.Label(index))
	prob := c.probStyle.Render(card.FormattedProbability())

	numbers := card.FormattedNumbers()
	balls := make([]string, len(numbers))
	for i, n := range numbers {
		balls[i] = c.ballStyle.Render(n)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+prob,
		lipgloss.JoinHorizontal(lipgloss.Top, balls...),
	)

	if faint {
		return c.faintStyle.Render(body)
	}
	return c.cardStyle.Render(body)
}

// View renders the summary and every visible card.
func (c CardList) View() string {
	if !c.HasResults() {
		return ""
	}

	var sections []string
	sections = append(sections, c.summaryStyle.Render(
		"Informações de Tempo\n"+strings.Join(c.TimingSummary(), "\n")))

	for i, card := range c.cards {
		visible, offset, faint := c.cardPhase(i)
		if !visible {
			continue
		}
		rendered := c.RenderCard(i, card, faint)
		if offset > 0 {
			rendered = strings.Repeat("\n", offset) + rendered
		}
		sections = append(sections, rendered)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
