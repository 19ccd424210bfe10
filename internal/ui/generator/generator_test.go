// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/megasena-tui/internal/megasena"
	"github.com/jeranaias/megasena-tui/internal/megasena/megasenatest"
	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/components"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeService struct {
	mu sync.Mutex

	status    *model.ServerStatus
	statusErr error
	result    *model.GenerationResult
	genErr    error

	statusCalls   int
	generateCalls int
	lastRequest   model.GenerationRequest
}

func newFakeService() *fakeService {
	return &fakeService{
		status: &model.ServerStatus{Status: "online", DataLoaded: true, TotalGames: 2700},
	}
}

func (f *fakeService) Status(ctx context.Context) (*model.ServerStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.status, nil
}

func (f *fakeService) GenerateGames(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateCalls++
	f.lastRequest = req
	if f.genErr != nil {
		return nil, f.genErr
	}
	if f.result != nil {
		return f.result, nil
	}
	result := megasenatest.FixedResult(req)
	return &result, nil
}

func (f *fakeService) calls() (status, generate int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls, f.generateCalls
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(svc Service) (Model, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)}
	opts := DefaultOptions()
	opts.Animate = false
	opts.Now = clock.Now
	return New(svc, opts), clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func press(t *testing.T, m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: keyType})
}

func typeRunes(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// collect runs cmd and every command nested in a batch, returning the
// produced messages. Only use it on commands that finish quickly.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findGenerateResult(t *testing.T, cmd tea.Cmd) GenerateResultMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if res, ok := msg.(GenerateResultMsg); ok {
			return res
		}
	}
	t.Fatal("no GenerateResultMsg produced")
	return GenerateResultMsg{}
}

func ready(t *testing.T, svc *fakeService) (Model, *fakeClock) {
	t.Helper()
	m, clock := newTestModel(svc)
	m, _ = update(t, m, StatusResultMsg{Status: svc.status})
	return m, clock
}

// =============================================================================
// STATUS CHECK TESTS
// =============================================================================

func TestInit_ChecksStatusOnce(t *testing.T) {
	svc := newFakeService()
	m, _ := newTestModel(svc)

	var status *StatusResultMsg
	for _, msg := range collect(m.Init()) {
		if s, ok := msg.(StatusResultMsg); ok {
			status = &s
		}
	}
	require.NotNil(t, status)
	assert.NoError(t, status.Err)

	statusCalls, generateCalls := svc.calls()
	assert.Equal(t, 1, statusCalls)
	assert.Zero(t, generateCalls)
}

func TestStatus_UnreachableDisablesForSession(t *testing.T) {
	svc := newFakeService()
	m, _ := newTestModel(svc)
	assert.True(t, m.GenerateEnabled())

	m, cmd := update(t, m, StatusResultMsg{Err: megasena.ErrUnreachable})
	assert.Nil(t, cmd, "persistent banner has no dismiss timer")
	assert.False(t, m.GenerateEnabled())

	banner, ok := m.Banner()
	require.True(t, ok)
	assert.Equal(t, MsgUnreachable, banner.Message)
	assert.Equal(t, components.BannerError, banner.Kind)
	assert.False(t, banner.Transient)

	m, cmd = press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.Loading())
	assert.False(t, m.TimerRunning())

	// A late status result cannot re-enable generation.
	m, _ = update(t, m, StatusResultMsg{Status: svc.status})
	assert.False(t, m.GenerateEnabled())

	_, generateCalls := svc.calls()
	assert.Zero(t, generateCalls)
}

func TestStatus_NoDataWarnsAndStaysEnabled(t *testing.T) {
	m, _ := newTestModel(newFakeService())

	m, cmd := update(t, m, StatusResultMsg{Status: &model.ServerStatus{Status: "online", DataLoaded: false}})
	assert.NotNil(t, cmd, "transient banner schedules its dismissal")
	assert.True(t, m.GenerateEnabled())

	banner, ok := m.Banner()
	require.True(t, ok)
	assert.Equal(t, MsgNoData, banner.Message)
	assert.Equal(t, components.BannerWarning, banner.Kind)
	assert.True(t, banner.Transient)

	m, _ = update(t, m, components.BannerDismissMsg{ID: banner.ID})
	_, ok = m.Banner()
	assert.False(t, ok)
}

func TestStatus_DataLoadedShowsNoBanner(t *testing.T) {
	svc := newFakeService()
	m, _ := ready(t, svc)

	_, ok := m.Banner()
	assert.False(t, ok)
	assert.True(t, m.StatusChecked())
	assert.Equal(t, 2700, m.ServerStatus().TotalGames)
	assert.Contains(t, m.View(), "2700 jogos no histórico")
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestGenerate_InvalidInputNeverSends(t *testing.T) {
	tests := []struct {
		name    string
		dezenas string
		cartoes string
		want    string
	}{
		{"dezenas too high", "13", "1", "Quantidade de dezenas deve ser entre 6 e 12"},
		{"dezenas too low", "5", "1", "Quantidade de dezenas deve ser entre 6 e 12"},
		{"dezenas empty", "", "1", "Quantidade de dezenas deve ser entre 6 e 12"},
		{"cartoes zero", "6", "0", "Quantidade de cartões deve ser entre 1 e 10"},
		{"cartoes too high", "6", "11", "Quantidade de cartões deve ser entre 1 e 10"},
		{"both invalid", "99", "99", "Quantidade de dezenas deve ser entre 6 e 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			m, _ := ready(t, svc)
			m.SetInputs(tt.dezenas, tt.cartoes)

			m, cmd := press(t, m, tea.KeyEnter)
			assert.NotNil(t, cmd, "only the banner dismissal is scheduled")
			assert.False(t, m.Loading())
			assert.False(t, m.TimerRunning())
			assert.True(t, m.GenerateEnabled())

			banner, ok := m.Banner()
			require.True(t, ok)
			assert.Equal(t, tt.want, banner.Message)
			assert.True(t, banner.Transient)

			_, generateCalls := svc.calls()
			assert.Zero(t, generateCalls)
		})
	}
}

// =============================================================================
// GENERATE TESTS
// =============================================================================

func TestGenerate_SuccessRendersCards(t *testing.T) {
	svc := newFakeService()
	m, clock := ready(t, svc)
	m.SetInputs("6", "3")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	assert.True(t, m.TimerRunning())
	assert.False(t, m.GenerateEnabled())

	result := findGenerateResult(t, cmd)
	require.NoError(t, result.Err)
	assert.Equal(t, model.GenerationRequest{Dezenas: 6, Cartoes: 3}, svc.lastRequest)

	clock.Advance(1500 * time.Millisecond)
	m, _ = update(t, m, result)
	assert.False(t, m.Loading())
	assert.False(t, m.TimerRunning())
	assert.True(t, m.GenerateEnabled())

	assert.Equal(t, 3, m.Cards().Len())
	view := m.View()
	assert.Equal(t, 3, strings.Count(view, "Jogo "))
	assert.Contains(t, view, "Tempo de processamento no servidor: 0.25 segundos")
	assert.Contains(t, view, "Tempo total (incluindo rede): 1.50 segundos")
	assert.Contains(t, view, "Tempo: 1.5s")
}

func TestGenerate_StatusBarCountsSessionGames(t *testing.T) {
	svc := newFakeService()
	m, _ := ready(t, svc)
	assert.Contains(t, m.View(), "[OK] Pronto")

	for i := 0; i < 2; i++ {
		m.SetInputs("6", "3")
		var cmd tea.Cmd
		m, cmd = press(t, m, tea.KeyEnter)
		assert.Contains(t, m.View(), "Gerando...")
		m, _ = update(t, m, findGenerateResult(t, cmd))
	}

	assert.Equal(t, 6, m.GamesGenerated())
	assert.Contains(t, m.View(), "6 jogos gerados")
}

func TestGenerate_ServiceErrorShownVerbatim(t *testing.T) {
	svc := newFakeService()
	svc.genErr = &megasena.ClientError{
		Type:       megasena.ErrTypeService,
		Message:    "Quantidade de dezenas inválida",
		StatusCode: 400,
	}
	m, _ := ready(t, svc)

	m, cmd := press(t, m, tea.KeyEnter)
	assert.True(t, m.Loading())
	assert.True(t, m.TimerRunning())

	m, _ = update(t, m, findGenerateResult(t, cmd))
	assert.False(t, m.Loading())
	assert.False(t, m.TimerRunning())
	assert.True(t, m.GenerateEnabled())

	banner, ok := m.Banner()
	require.True(t, ok)
	assert.Equal(t, "Erro ao gerar jogos: Quantidade de dezenas inválida", banner.Message)
	assert.False(t, banner.Transient)
	assert.Zero(t, m.Cards().Len())
}

func TestGenerate_FaultShowsFaultMessage(t *testing.T) {
	svc := newFakeService()
	svc.genErr = &megasena.ClientError{
		Type:    megasena.ErrTypeFault,
		Message: "falha na comunicação com o servidor",
		Cause:   errors.New("connection refused"),
	}
	m, _ := ready(t, svc)

	m, cmd := press(t, m, tea.KeyEnter)
	m, _ = update(t, m, findGenerateResult(t, cmd))
	assert.False(t, m.Loading())
	assert.False(t, m.TimerRunning())

	banner, ok := m.Banner()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(banner.Message, "Erro ao gerar jogos: "))
	assert.Contains(t, banner.Message, "connection refused")
	assert.False(t, banner.Transient)
}

func TestGenerate_IgnoredWhileLoading(t *testing.T) {
	svc := newFakeService()
	m, _ := ready(t, svc)

	m, first := press(t, m, tea.KeyEnter)
	require.NotNil(t, first)

	m, second := press(t, m, tea.KeyEnter)
	assert.Nil(t, second)
	assert.True(t, m.Loading())

	findGenerateResult(t, first)
	_, generateCalls := svc.calls()
	assert.Equal(t, 1, generateCalls)
}

func TestGenerate_ClearsPreviousResults(t *testing.T) {
	svc := newFakeService()
	m, _ := ready(t, svc)

	m, cmd := press(t, m, tea.KeyEnter)
	m, _ = update(t, m, findGenerateResult(t, cmd))
	require.Equal(t, 1, m.Cards().Len())

	m, _ = press(t, m, tea.KeyEnter)
	assert.True(t, m.Loading())
	assert.Zero(t, m.Cards().Len())
}

func TestGenerate_StrayResultIgnored(t *testing.T) {
	m, _ := ready(t, newFakeService())

	result := megasenatest.FixedResult(model.GenerationRequest{Dezenas: 6, Cartoes: 2})
	m, cmd := update(t, m, GenerateResultMsg{Result: &result})
	assert.Nil(t, cmd)
	assert.Zero(t, m.Cards().Len())
}

func TestGenerate_NilResultIsInvalidResponse(t *testing.T) {
	m, _ := ready(t, newFakeService())

	m, _ = press(t, m, tea.KeyEnter)
	m, _ = update(t, m, GenerateResultMsg{})
	assert.False(t, m.Loading())

	banner, ok := m.Banner()
	require.True(t, ok)
	assert.Equal(t, GenerateErrorText(megasena.ErrInvalidResponse), banner.Message)
}

// =============================================================================
// BANNER TESTS
// =============================================================================

func TestBanner_NewReplacesOld(t *testing.T) {
	svc := newFakeService()
	svc.genErr = &megasena.ClientError{Type: megasena.ErrTypeService, Message: "falhou"}
	m, _ := ready(t, svc)

	m.SetInputs("13", "1")
	m, _ = press(t, m, tea.KeyEnter)
	first, ok := m.Banner()
	require.True(t, ok)

	m.SetInputs("6", "1")
	m, cmd := press(t, m, tea.KeyEnter)
	m, _ = update(t, m, findGenerateResult(t, cmd))

	second, ok := m.Banner()
	require.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Erro ao gerar jogos: falhou", second.Message)

	// The first banner's dismissal arrives late and must not remove the second.
	m, _ = update(t, m, components.BannerDismissMsg{ID: first.ID})
	current, ok := m.Banner()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, 1, strings.Count(m.View(), "Erro ao gerar jogos"))
}

// =============================================================================
// KEY TESTS
// =============================================================================

func TestKeys_NonDigitsIgnored(t *testing.T) {
	m, _ := ready(t, newFakeService())
	m.SetInputs("", "1")

	m, _ = typeRunes(t, m, "a")
	dezenas, _ := m.Inputs()
	assert.Equal(t, "", dezenas)

	m, _ = typeRunes(t, m, "7")
	dezenas, _ = m.Inputs()
	assert.Equal(t, "7", dezenas)
}

func TestKeys_TabMovesFocus(t *testing.T) {
	m, _ := ready(t, newFakeService())
	m.SetInputs("", "")

	m, _ = press(t, m, tea.KeyTab)
	m, _ = typeRunes(t, m, "5")
	dezenas, cartoes := m.Inputs()
	assert.Equal(t, "", dezenas)
	assert.Equal(t, "5", cartoes)

	m, _ = press(t, m, tea.KeyShiftTab)
	m, _ = typeRunes(t, m, "8")
	dezenas, _ = m.Inputs()
	assert.Equal(t, "8", dezenas)
}

func TestKeys_Quit(t *testing.T) {
	m, _ := ready(t, newFakeService())

	m, cmd := typeRunes(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", m.View())
}

func TestKeys_ClearResults(t *testing.T) {
	m, _ := ready(t, newFakeService())

	m, cmd := press(t, m, tea.KeyEnter)
	m, _ = update(t, m, findGenerateResult(t, cmd))
	require.Equal(t, 1, m.Cards().Len())

	m, _ = press(t, m, tea.KeyCtrlL)
	assert.Zero(t, m.Cards().Len())
}

// =============================================================================
// REQUEST STATE TESTS
// =============================================================================

func TestRequestState_BeginAndRelease(t *testing.T) {
	s := NewRequestState()
	start := time.Now()

	release, cmd, err := s.Begin(start)
	require.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.True(t, s.Loading())
	assert.True(t, s.TimerRunning())
	assert.True(t, s.SpinnerActive())

	_, _, err = s.Begin(start)
	assert.ErrorIs(t, err, ErrRequestInFlight)

	release(start.Add(2 * time.Second))
	assert.False(t, s.Loading())
	assert.False(t, s.TimerRunning())
	assert.False(t, s.SpinnerActive())
	assert.Equal(t, 2*time.Second, s.Elapsed())

	release(start.Add(5 * time.Second))
	assert.Equal(t, 2*time.Second, s.Elapsed(), "second release is a no-op")
}

func TestRequestState_OldReleaseCannotEndNewRequest(t *testing.T) {
	s := NewRequestState()
	start := time.Now()

	old, _, err := s.Begin(start)
	require.NoError(t, err)
	s.End(start.Add(time.Second))

	_, _, err = s.Begin(start.Add(2 * time.Second))
	require.NoError(t, err)

	old(start.Add(3 * time.Second))
	assert.True(t, s.Loading())
	assert.True(t, s.TimerRunning())
}

// =============================================================================
// END-TO-END TESTS
// =============================================================================

func TestGenerate_AgainstFakeService(t *testing.T) {
	srv := megasenatest.NewServer()
	defer srv.Close()
	client := megasena.NewClientWithConfig(&megasena.ClientConfig{BaseURL: srv.URL})

	m, clock := newTestModel(client)
	for _, msg := range collect(m.Init()) {
		m, _ = update(t, m, msg)
	}
	require.True(t, m.StatusChecked())
	require.True(t, m.GenerateEnabled())

	m.SetInputs("13", "1")
	m, _ = press(t, m, tea.KeyEnter)
	assert.Zero(t, srv.Count(megasena.GeneratePath), "13 dezenas is rejected locally")

	m.SetInputs("6", "1")
	m, cmd := press(t, m, tea.KeyEnter)
	result := findGenerateResult(t, cmd)
	clock.Advance(300 * time.Millisecond)
	m, _ = update(t, m, result)

	reqs := srv.GenerateRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, model.GenerationRequest{Dezenas: 6, Cartoes: 1}, reqs[0])

	var body []byte
	for _, r := range srv.Requests() {
		if r.Path == megasena.GeneratePath {
			body = r.Body
		}
	}
	assert.JSONEq(t, `{"dezenas":6,"cartoes":1}`, string(body))

	assert.False(t, m.Loading())
	assert.Equal(t, 1, m.Cards().Len())
	view := m.View()
	assert.Contains(t, view, "Jogo 1")
	assert.Contains(t, view, "50% chance")
}

func TestStatus_AgainstUnreachableService(t *testing.T) {
	srv := megasenatest.NewServer()
	url := srv.URL
	srv.Close()

	client := megasena.NewClientWithConfig(&megasena.ClientConfig{BaseURL: url})
	m, _ := newTestModel(client)
	for _, msg := range collect(m.Init()) {
		m, _ = update(t, m, msg)
	}

	assert.False(t, m.GenerateEnabled())
	banner, ok := m.Banner()
	require.True(t, ok)
	assert.Equal(t, MsgUnreachable, banner.Message)
}
