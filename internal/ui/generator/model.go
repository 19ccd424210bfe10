// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/megasena-tui/internal/config"
	"github.com/jeranaias/megasena-tui/internal/logging"
	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/components"
	"github.com/jeranaias/megasena-tui/internal/ui/styles"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a new screen.
type Options struct {
	// Dezenas and Cartoes pre-fill the inputs.
	Dezenas int
	Cartoes int

	// Animate enables the card entrance animation.
	Animate bool

	// Theme defaults to the dark theme.
	Theme *styles.Theme

	// Context bounds every request; cancelled on quit.
	Context context.Context

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

// DefaultOptions returns the options used without a config file.
func DefaultOptions() Options {
	return Options{
		Dezenas: model.MinDezenas,
		Cartoes: model.MinCartoes,
		Animate: true,
	}
}

// OptionsFromConfig builds options from the user configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.Dezenas = cfg.UI.DefaultDezenas
	opts.Cartoes = cfg.UI.DefaultCartoes
	opts.Animate = cfg.UI.Animate
	opts.Theme = styles.NewTheme(cfg.UI.Theme)
	return opts
}

// =============================================================================
// MODEL
// =============================================================================

type focusArea int

const (
	focusDezenas focusArea = iota
	focusCartoes
	focusButton
	focusCount
)

// Model is the generator screen.
type Model struct {
	svc    Service
	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time
	log    zerolog.Logger

	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	dezenas textinput.Model
	cartoes textinput.Model
	focus   focusArea

	// state is shared by every copy of the model so a Release taken
	// in one Update stays valid in later ones.
	state     *RequestState
	release   Release
	startedAt time.Time

	// disabled is set once, by a failed status check.
	disabled      bool
	statusChecked bool
	status        *model.ServerStatus

	banner  components.ErrorBanner
	cards   components.CardList
	results viewport.Model
	bar     components.StatusBar

	width    int
	height   int
	quitting bool
}

// New creates the screen. svc may be nil, in which case the status check
// fails and generation stays disabled.
func New(svc Service, opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ModeDark)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	m := Model{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		now:     now,
		log:     logging.With("generator"),
		theme:   theme,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		dezenas: newNumberInput(opts.Dezenas, model.MinDezenas),
		cartoes: newNumberInput(opts.Cartoes, model.MinCartoes),
		state:   NewRequestState(),
		banner:  components.NewErrorBanner(),
		cards:   components.NewCardList(),
		results: viewport.New(0, 0),
		bar:     components.NewStatusBar(theme),
	}

	m.state.UseTheme(theme)
	m.banner.SetStyles(theme.ErrorBanner, theme.WarningBanner)
	m.cards.UseTheme(theme)
	m.cards.SetAnimate(opts.Animate)
	m.help.Styles.ShortKey = theme.ShortcutKey
	m.help.Styles.ShortDesc = theme.ShortcutDesc
	m.help.Styles.FullKey = theme.ShortcutKey
	m.help.Styles.FullDesc = theme.ShortcutDesc
	m.dezenas.PlaceholderStyle = theme.InputHint
	m.cartoes.PlaceholderStyle = theme.InputHint

	m.dezenas.Focus()
	return m
}

func newNumberInput(value, fallback int) textinput.Model {
	if value == 0 {
		value = fallback
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 2
	ti.Width = 3
	ti.Placeholder = strconv.Itoa(fallback)
	ti.SetValue(strconv.Itoa(value))
	return ti
}

// Init starts the status check and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(CheckStatusCmd(m.ctx, m.svc), textinput.Blink)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Loading reports whether a generate request is in flight.
func (m Model) Loading() bool {
	return m.state.Loading()
}

// TimerRunning reports whether the stopwatch is ticking.
func (m Model) TimerRunning() bool {
	return m.state.TimerRunning()
}

// GenerateEnabled reports whether the generate action is available.
func (m Model) GenerateEnabled() bool {
	return !m.disabled && !m.state.Loading()
}

// StatusChecked reports whether the startup status check has completed.
func (m Model) StatusChecked() bool {
	return m.statusChecked
}

// ServerStatus returns the status reported at startup, if any.
func (m Model) ServerStatus() *model.ServerStatus {
	return m.status
}

// Banner returns the visible banner.
func (m Model) Banner() (components.Banner, bool) {
	return m.banner.Current()
}

// Cards returns the result list.
func (m Model) Cards() components.CardList {
	return m.cards
}

// Inputs returns the raw text of the two inputs.
func (m Model) Inputs() (dezenas, cartoes string) {
	return m.dezenas.Value(), m.cartoes.Value()
}

// GamesGenerated returns the number of cards generated this session.
func (m Model) GamesGenerated() int {
	return m.bar.Generated
}

// SetInputs replaces the text of the two inputs.
func (m *Model) SetInputs(dezenas, cartoes string) {
	m.dezenas.SetValue(dezenas)
	m.cartoes.SetValue(cartoes)
}
