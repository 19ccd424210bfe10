// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/megasena-tui/internal/ui/components"
	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// ErrRequestInFlight is returned by Begin while a request is loading.
var ErrRequestInFlight = errors.New("generator: request already in flight")

// =============================================================================
// REQUEST STATE
// =============================================================================

// Release ends the loading state entered by Begin. Calling it more than
// once, or after a newer Begin, does nothing.
type Release func(now time.Time)

// RequestState ties the loading flag, the stopwatch and the spinner
// together. They change only through Begin and End, so they are always
// either all active or all idle.
type RequestState struct {
	loading   bool
	seq       int
	stopwatch components.Stopwatch
	spinner   components.Spinner
}

// NewRequestState creates an idle state.
func NewRequestState() *RequestState {
	return &RequestState{
		stopwatch: components.NewStopwatch(),
		spinner:   components.NewSpinner(),
	}
}

// UseTheme applies the loading styles from theme.
func (s *RequestState) UseTheme(theme *styles.Theme) {
	s.stopwatch.SetStyles(theme.StopwatchActive, theme.StopwatchIdle)
	s.spinner.SetStyle(theme.Spinner)
}

// Begin enters loading at now. It returns the release for this request
// and the first stopwatch and spinner ticks.
func (s *RequestState) Begin(now time.Time) (Release, tea.Cmd, error) {
	if s.loading {
		return nil, nil, ErrRequestInFlight
	}

	s.seq++
	s.loading = true
	cmd := tea.Batch(s.stopwatch.Start(now), s.spinner.Start())

	token := s.seq
	released := false
	release := func(at time.Time) {
		if released {
			return
		}
		released = true
		if token != s.seq {
			return
		}
		s.End(at)
	}
	return release, cmd, nil
}

// End leaves loading, freezing the stopwatch at now.
func (s *RequestState) End(now time.Time) {
	if !s.loading {
		return
	}
	s.loading = false
	s.stopwatch.Stop(now)
	s.spinner.Stop()
}

// Loading reports whether a request is in flight.
func (s *RequestState) Loading() bool {
	return s.loading
}

// TimerRunning reports whether the stopwatch is ticking.
func (s *RequestState) TimerRunning() bool {
	return s.stopwatch.Running()
}

// SpinnerActive reports whether the spinner is shown.
func (s *RequestState) SpinnerActive() bool {
	return s.spinner.IsActive()
}

// Elapsed returns the stopwatch reading.
func (s *RequestState) Elapsed() time.Duration {
	return s.stopwatch.Elapsed()
}

// Update routes stopwatch and spinner ticks.
func (s *RequestState) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case components.StopwatchTickMsg:
		var cmd tea.Cmd
		s.stopwatch, cmd = s.stopwatch.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
}

// StopwatchView renders the stopwatch label.
func (s *RequestState) StopwatchView() string {
	return s.stopwatch.View()
}

// SpinnerView renders the spinner, empty when idle.
func (s *RequestState) SpinnerView() string {
	return s.spinner.View()
}
