// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// LineSpinner - Simple line rotation
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.FPS)
}

// =============================================================================
// TRANSITION EFFECTS
// =============================================================================

// EasingFunc maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// TransitionConfig defines a transition animation.
type TransitionConfig struct {
	Duration time.Duration
	Easing   EasingFunc
}

// Progress returns the eased progress of a transition elapsed into its
// run, clamped to [0,1].
func (tc TransitionConfig) Progress(elapsed time.Duration) float64 {
	if tc.Duration <= 0 || elapsed >= tc.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	ease := tc.Easing
	if ease == nil {
		ease = EaseLinear
	}
	return ease(float64(elapsed) / float64(tc.Duration))
}

// Card entrance: each card waits CardStagger × index, then slides in.
var (
	CardEntrance = TransitionConfig{
		Duration: 500 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
	CardStagger = 100 * time.Millisecond
)

// AnimationFrame is the tick interval for cosmetic animations (~30fps).
const AnimationFrame = 33 * time.Millisecond
