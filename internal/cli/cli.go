// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command tree and shared application state.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jeranaias/megasena-tui/internal/config"
	"github.com/jeranaias/megasena-tui/internal/logging"
	"github.com/jeranaias/megasena-tui/internal/megasena"
	"github.com/jeranaias/megasena-tui/internal/ui/generator"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// APP
// =============================================================================

// App holds the dependencies of every command. The zero-value fields are
// filled by NewApp; tests replace them.
type App struct {
	Out io.Writer
	Err io.Writer

	// BaseURL is the service address. It is not user-configurable.
	BaseURL string

	// NewService builds the service client for BaseURL.
	NewService func(baseURL string) generator.Service

	// IsInteractive reports whether the terminal can host the screen.
	IsInteractive func() bool

	// RunProgram runs the interactive screen.
	RunProgram func(m tea.Model) error

	// Now is the clock used to measure round trips.
	Now func() time.Time

	cfg        *config.Config
	configPath string
	jsonMode   bool
	logLevel   string
	logCloser  io.Closer
}

// NewApp creates an App wired to the real terminal and service.
func NewApp() *App {
	return &App{
		Out:     os.Stdout,
		Err:     os.Stderr,
		BaseURL: megasena.DefaultBaseURL,
		NewService: func(baseURL string) generator.Service {
			return megasena.NewClientWithConfig(&megasena.ClientConfig{BaseURL: baseURL})
		},
		IsInteractive: IsInteractive,
		RunProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
		Now: time.Now,
	}
}

// Execute runs the command line with os.Args and returns the exit code.
func Execute() int {
	return NewApp().Run(os.Args[1:])
}

// Run executes args and returns the exit code. Errors not already
// reported by a JSON envelope are printed to Err.
func (a *App) Run(args []string) int {
	if args == nil {
		args = []string{}
	}
	root := a.NewRootCommand()
	root.SetArgs(args)

	err := root.Execute()
	defer a.closeLog()
	if err != nil {
		logging.L().Error().Err(err).Msg("command failed")
		var reported reportedError
		if !errors.As(err, &reported) {
			DisplayError(a.Err, err)
		}
		return GetExitCode(err)
	}
	return ExitSuccess
}

// NewRootCommand builds the command tree.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "megasena",
		Short: "Gerador de jogos da Mega-Sena",
		Long: "Gerador de jogos da Mega-Sena.\n\n" +
			"Sem subcomando, abre a interface interativa. Os subcomandos\n" +
			"status e gerar funcionam sem terminal interativo.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(inConfigTree(cmd))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	root.SetVersionTemplate("megasena version {{.Version}}\n")

	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "Saída em JSON")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Arquivo de configuração (TOML ou JSON)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Nível de log: off|error|warn|info|debug")

	root.AddCommand(
		a.newTUICommand(),
		a.newStatusCommand(),
		a.newGenerateCommand(),
		a.newVersionCommand(),
		a.newConfigCommand(),
	)
	return root
}

// setup loads the configuration and starts logging. With lenient set an
// invalid config file falls back to defaults so it can still be repaired.
func (a *App) setup(lenient bool) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFromPath(config.ExpandHome(a.configPath))
		if err != nil {
			return NewCommandError("config", err.Error(), err)
		}
	} else {
		cfg, err = config.Load()
		if cfg == nil && !lenient {
			return NewCommandError("config", err.Error(), err)
		}
		if cfg == nil {
			cfg = config.Default()
		}
		if err != nil {
			fmt.Fprintf(a.Err, "%s %v (usando padrões)\n", WarningStyle.Render("[WARN]"), err)
		}
	}

	level := cfg.Logging.Level
	if a.logLevel != "" {
		if _, err := logging.ParseLevel(a.logLevel); err != nil {
			return NewCommandError("log-level", err.Error(), err)
		}
		level = a.logLevel
	}

	closer, err := logging.Setup(level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(a.Err, "%s log desativado: %v\n", WarningStyle.Render("[WARN]"), err)
	} else {
		a.logCloser = closer
	}

	config.SetGlobal(cfg)
	a.cfg = cfg
	return nil
}

func inConfigTree(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

func (a *App) closeLog() {
	if a.logCloser != nil {
		logging.SetLogger(zerolog.Nop())
		a.logCloser.Close()
		a.logCloser = nil
	}
}

func (a *App) currentConfig() *config.Config {
	if a.cfg == nil {
		return config.Default()
	}
	return a.cfg
}

func (a *App) service() generator.Service {
	return a.NewService(a.BaseURL)
}

// =============================================================================
// TUI
// =============================================================================

func (a *App) newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Abre a interface interativa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *App) runTUI(cmd *cobra.Command) error {
	if a.jsonMode {
		return NewCommandError("tui", "a interface interativa não suporta --json", nil)
	}
	if !a.IsInteractive() {
		return &TTYRequiredError{Operation: "start the interactive screen"}
	}

	opts := generator.OptionsFromConfig(a.currentConfig())
	opts.Context = cmd.Context()

	logging.L().Info().Str("base_url", a.BaseURL).Msg("starting interactive screen")
	if err := a.RunProgram(generator.New(a.service(), opts)); err != nil {
		return NewCommandError("tui", "erro ao executar a interface: "+err.Error(), err)
	}
	return nil
}

// =============================================================================
// VERSION
// =============================================================================

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := VersionData{
				Version:   Version,
				GitCommit: GitCommit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
			}
			return OutputJSON(a.Out, a.jsonMode, "version", func() (interface{}, error) {
				if !a.jsonMode {
					fmt.Fprintf(a.Out, "megasena version %s\n", data.Version)
					fmt.Fprintln(a.Out, DimStyle.Render(fmt.Sprintf("commit %s, built %s, %s",
						data.GitCommit, data.BuildDate, data.GoVersion)))
				}
				return data, nil
			})
		},
	}
}
