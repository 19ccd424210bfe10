// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"
)

func TestStopwatch_Idle(t *testing.T) {
	s := NewStopwatch()

	if s.Running() {
		t.Error("new stopwatch should be idle")
	}
	if got := s.Text(); got != "Tempo: 0.0s" {
		t.Errorf("Text() = %q", got)
	}
}

func TestStopwatch_TickUpdatesElapsed(t *testing.T) {
	s := NewStopwatch()
	t0 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	if cmd := s.Start(t0); cmd == nil {
		t.Fatal("Start() should schedule a tick")
	}
	if !s.Running() {
		t.Fatal("stopwatch should be running")
	}

	s, cmd := s.Update(StopwatchTickMsg{Run: s.Run(), Time: t0.Add(1230 * time.Millisecond)})
	if cmd == nil {
		t.Error("running stopwatch should schedule the next tick")
	}
	if got := s.Text(); got != "Tempo: 1.2s" {
		t.Errorf("Text() = %q, want 'Tempo: 1.2s'", got)
	}
	if !strings.Contains(s.View(), "Tempo: 1.2s") {
		t.Errorf("View() = %q", s.View())
	}
}

func TestStopwatch_StopFreezesAndDropsTicks(t *testing.T) {
	s := NewStopwatch()
	t0 := time.Now()
	s.Start(t0)
	run := s.Run()

	s.Stop(t0.Add(2 * time.Second))
	if s.Running() {
		t.Fatal("stopwatch should be idle after Stop")
	}
	if s.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %v, want 2s", s.Elapsed())
	}

	s, cmd := s.Update(StopwatchTickMsg{Run: run, Time: t0.Add(5 * time.Second)})
	if cmd != nil {
		t.Error("tick after Stop should not reschedule")
	}
	if s.Elapsed() != 2*time.Second {
		t.Errorf("tick after Stop changed elapsed to %v", s.Elapsed())
	}
}

func TestStopwatch_StaleRunIgnored(t *testing.T) {
	s := NewStopwatch()
	t0 := time.Now()

	s.Start(t0)
	oldRun := s.Run()
	s.Stop(t0.Add(time.Second))
	s.Start(t0.Add(2 * time.Second))

	if s.Run() == oldRun {
		t.Fatal("restart should change the run id")
	}

	s, cmd := s.Update(StopwatchTickMsg{Run: oldRun, Time: t0.Add(10 * time.Second)})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if s.Elapsed() != 0 {
		t.Errorf("stale tick changed elapsed to %v", s.Elapsed())
	}
}

func TestStopwatch_StopWhenIdleIsNoop(t *testing.T) {
	s := NewStopwatch()
	s.Stop(time.Now())
	if s.Elapsed() != 0 || s.Running() {
		t.Error("Stop on idle stopwatch should do nothing")
	}
}
