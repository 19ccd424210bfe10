// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/megasena-tui/internal/model"
)

func threeCards() []model.Card {
	return []model.Card{
		{Numeros: []int{5, 12, 33, 41, 50, 60}, Probabilidade: 12.5},
		{Numeros: []int{1, 2, 3, 4, 5, 6}, Probabilidade: 3},
		{Numeros: []int{7, 8, 9, 10, 11, 58}, Probabilidade: 0.01},
	}
}

func TestCardList_RendersEveryCard(t *testing.T) {
	c := NewCardList()
	c.SetAnimate(false)

	cmd := c.SetResults(threeCards(), 0.25, 1234*time.Millisecond, time.Now())
	assert.Nil(t, cmd, "no animation ticks when animation is off")

	view := c.View()
	assert.Equal(t, 3, strings.Count(view, "Jogo "))
	assert.Contains(t, view, "Jogo 1")
	assert.Contains(t, view, "Jogo 3")
	assert.NotContains(t, view, "Jogo 4")
	assert.Contains(t, view, "12.5% chance")
	assert.Contains(t, view, "0.01% chance")
	assert.Contains(t, view, "Tempo de processamento no servidor: 0.25 segundos")
	assert.Contains(t, view, "Tempo total (incluindo rede): 1.23 segundos")
}

func TestCardList_NumbersPaddedInOrder(t *testing.T) {
	c := NewCardList()
	card := model.Card{Numeros: []int{9, 1, 45}, Probabilidade: 1}

	out := c.RenderCard(0, card, false)

	i9 := strings.Index(out, "09")
	i1 := strings.Index(out, "01")
	i45 := strings.Index(out, "45")
	require.True(t, i9 >= 0 && i1 >= 0 && i45 >= 0, out)
	assert.Less(t, i9, i1)
	assert.Less(t, i1, i45)
}

func TestCardList_TimingSummary(t *testing.T) {
	c := NewCardList()
	c.SetResults(nil, 3, 500*time.Millisecond, time.Now())

	assert.Equal(t, []string{
		"Tempo de processamento no servidor: 3 segundos",
		"Tempo total (incluindo rede): 0.50 segundos",
	}, c.TimingSummary())
	assert.Empty(t, c.View(), "no cards, nothing to show")
}

func TestCardList_StaggeredEntrance(t *testing.T) {
	c := NewCardList()
	t0 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	cmd := c.SetResults(threeCards(), 0.25, time.Second, t0)
	require.NotNil(t, cmd)
	assert.True(t, c.Animating())

	// At t0 only the first card exists, fully offset and faint.
	visible, offset, faint := c.cardPhase(0)
	assert.True(t, visible)
	assert.Equal(t, CardOffsetLines, offset)
	assert.True(t, faint)
	visible, _, _ = c.cardPhase(1)
	assert.False(t, visible)
	assert.Equal(t, 1, strings.Count(c.View(), "Jogo "))

	// 150ms: second card has appeared, third has not.
	c, cmd = c.Update(CardTickMsg{Run: c.run, Time: t0.Add(150 * time.Millisecond)})
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, strings.Count(c.View(), "Jogo "))

	// After the last card's delay plus the transition everything is settled.
	c, cmd = c.Update(CardTickMsg{Run: c.run, Time: t0.Add(700 * time.Millisecond)})
	assert.Nil(t, cmd)
	assert.False(t, c.Animating())
	for i := range threeCards() {
		visible, offset, faint := c.cardPhase(i)
		assert.True(t, visible)
		assert.Zero(t, offset)
		assert.False(t, faint)
	}
	assert.Equal(t, 3, strings.Count(c.View(), "Jogo "))
}

func TestCardList_StaleTickIgnored(t *testing.T) {
	c := NewCardList()
	t0 := time.Now()
	c.SetResults(threeCards(), 0.25, time.Second, t0)
	oldRun := c.run

	c.Clear()
	assert.False(t, c.HasResults())

	c, cmd := c.Update(CardTickMsg{Run: oldRun, Time: t0.Add(time.Second)})
	assert.Nil(t, cmd)
	assert.Empty(t, c.View())
}

func TestCardList_ReplacesPreviousResults(t *testing.T) {
	c := NewCardList()
	c.SetAnimate(false)

	c.SetResults(threeCards(), 0.25, time.Second, time.Now())
	c.SetResults(threeCards()[:1], 0.1, time.Second, time.Now())

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, strings.Count(c.View(), "Jogo "))
}
