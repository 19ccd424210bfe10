// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// StopwatchInterval is how often a running stopwatch refreshes.
const StopwatchInterval = 100 * time.Millisecond

// StopwatchTickMsg refreshes a running stopwatch.
// Run identifies the Start call that scheduled it.
type StopwatchTickMsg struct {
	Run  int
	Time time.Time
}

// =============================================================================
// STOPWATCH
// =============================================================================

// Stopwatch shows wall-clock time for the in-flight request.
// It is Idle or Running; ticks from an earlier run are discarded.
type Stopwatch struct {
	start    time.Time
	elapsed  time.Duration
	running  bool
	run      int
	interval time.Duration

	activeStyle lipgloss.Style
	idleStyle   lipgloss.Style
}

// NewStopwatch creates an idle stopwatch.
func NewStopwatch() Stopwatch {
	return Stopwatch{
		interval:    StopwatchInterval,
		activeStyle: lipgloss.NewStyle().Foreground(styles.Amber).Bold(true),
		idleStyle:   lipgloss.NewStyle().Foreground(styles.TextMuted),
	}
}

// SetStyles overrides the running and idle styles.
func (s *Stopwatch) SetStyles(active, idle lipgloss.Style) {
	s.activeStyle = active
	s.idleStyle = idle
}

// Start moves Idle->Running at now and returns the first tick.
// Starting a running stopwatch restarts it.
func (s *Stopwatch) Start(now time.Time) tea.Cmd {
	s.run++
	s.start = now
	s.elapsed = 0
	s.running = true
	return s.tick()
}

// Stop moves Running->Idle, freezing the elapsed time at now.
// Pending ticks become stale and are ignored.
func (s *Stopwatch) Stop(now time.Time) {
	if !s.running {
		return
	}
	s.elapsed = now.Sub(s.start)
	s.running = false
}

// Running reports whether the stopwatch is ticking.
func (s Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the last computed elapsed time.
func (s Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Run returns the current run counter.
func (s Stopwatch) Run() int {
	return s.run
}

func (s Stopwatch) tick() tea.Cmd {
	run := s.run
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return StopwatchTickMsg{Run: run, Time: t}
	})
}

// Update recomputes elapsed on a current tick and schedules the next one.
func (s Stopwatch) Update(msg tea.Msg) (Stopwatch, tea.Cmd) {
	tick, ok := msg.(StopwatchTickMsg)
	if !ok {
		return s, nil
	}
	if !s.running || tick.Run != s.run {
		return s, nil
	}

	s.elapsed = tick.Time.Sub(s.start)
	if s.elapsed < 0 {
		s.elapsed = 0
	}
	return s, s.tick()
}

// Text returns the plain label, e.g. "Tempo: 1.2s".
func (s Stopwatch) Text() string {
	return FormatStopwatch(s.elapsed)
}

// View renders the label, highlighted while running.
func (s Stopwatch) View() string {
	if s.running {
		return s.activeStyle.Render(s.Text())
	}
	return s.idleStyle.Render(s.Text())
}

// FormatStopwatch renders d with one decimal of seconds.
func FormatStopwatch(d time.Duration) string {
	return fmt.Sprintf("Tempo: %.1fs", d.Seconds())
}
