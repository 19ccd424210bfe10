// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestNewSpinner(t *testing.T) {
	s := NewSpinner()

	if s.IsActive() {
		t.Error("NewSpinner() should not be active initially")
	}
	if s.message != "Gerando jogos" {
		t.Errorf("message = %q", s.message)
	}
	if s.View() != "" {
		t.Errorf("inactive spinner should render nothing, got %q", s.View())
	}
}

func TestSpinnerStartStop(t *testing.T) {
	s := NewSpinner()

	cmd := s.Start()
	if cmd == nil {
		t.Fatal("Start() should return a tick command")
	}
	if !s.IsActive() {
		t.Error("spinner should be active after Start()")
	}
	if !strings.Contains(s.View(), "Gerando jogos...") {
		t.Errorf("View() = %q", s.View())
	}

	s.Stop()
	if s.IsActive() {
		t.Error("spinner should be inactive after Stop()")
	}

	// Ticks after Stop are swallowed.
	s, cmd = s.Update(spinner.TickMsg{Time: time.Now()})
	if cmd != nil {
		t.Error("stopped spinner should not schedule ticks")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s := NewSpinner()
	s.SetMessage("Verificando")
	s.Start()

	if !strings.Contains(s.View(), "Verificando") {
		t.Errorf("View() = %q", s.View())
	}
}
