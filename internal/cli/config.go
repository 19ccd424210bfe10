// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation.
//
// Command: config
// Subcommands:
//   path                Show the config file location
//   show                Show the effective configuration
//   init [--force]      Write a default config file
//   get KEY             Show one value (e.g. ui.default_dezenas)
//   set KEY VALUE       Change one value in the config file

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/megasena-tui/internal/config"
)

func (a *App) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Gerencia o arquivo de configuração",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow()
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Cria um arquivo de configuração padrão",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Sobrescreve um arquivo existente")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Mostra o caminho do arquivo de configuração",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigPath()
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Mostra a configuração efetiva",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigShow()
			},
		},
		initCmd,
		&cobra.Command{
			Use:       "get KEY",
			Short:     "Mostra um valor da configuração",
			Args:      cobra.ExactArgs(1),
			ValidArgs: config.GetAllKeys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigGet(args[0])
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Altera um valor no arquivo de configuração",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runConfigSet(args[0], args[1])
			},
		},
	)
	return cmd
}

func (a *App) configFilePath() (string, error) {
	if a.configPath != "" {
		return config.ExpandHome(a.configPath), nil
	}
	return config.ConfigPathTOML()
}

func (a *App) runConfigPath() error {
	return OutputJSON(a.Out, a.jsonMode, "config path", func() (interface{}, error) {
		path, err := a.configFilePath()
		if err != nil {
			return nil, NewCommandError("config path", err.Error(), err)
		}
		_, statErr := os.Stat(path)
		exists := statErr == nil

		if !a.jsonMode {
			fmt.Fprintln(a.Out, path)
			if !exists {
				fmt.Fprintln(a.Err, DimStyle.Render("(arquivo não existe; use 'megasena config init')"))
			}
		}
		return map[string]interface{}{"path": path, "exists": exists}, nil
	})
}

func (a *App) runConfigShow() error {
	return OutputJSON(a.Out, a.jsonMode, "config show", func() (interface{}, error) {
		path, err := a.configFilePath()
		if err != nil {
			return nil, NewCommandError("config show", err.Error(), err)
		}
		cfg := a.currentConfig()

		if !a.jsonMode {
			fmt.Fprintln(a.Out, TitleStyle.Render("Configuração"))
			fmt.Fprintln(a.Out, RenderField("Arquivo", path))
			fmt.Fprintln(a.Out, RenderSeparator())
			for _, key := range config.GetAllKeys() {
				value, err := cfg.Get(key)
				if err != nil {
					continue
				}
				fmt.Fprintln(a.Out, RenderField(key, fmt.Sprint(value)))
			}
		}
		return ConfigData{Path: path, Config: cfg}, nil
	})
}

func (a *App) runConfigInit(force bool) error {
	return OutputJSON(a.Out, a.jsonMode, "config init", func() (interface{}, error) {
		path, err := a.configFilePath()
		if err != nil {
			return nil, NewCommandError("config init", err.Error(), err)
		}
		if _, err := os.Stat(path); err == nil && !force {
			return nil, NewCommandError("config init",
				fmt.Sprintf("o arquivo %s já existe (use --force para sobrescrever)", path), nil)
		}

		cfg := config.Default()
		if err := writeConfig(cfg, path); err != nil {
			return nil, NewCommandError("config init", err.Error(), err)
		}

		if !a.jsonMode {
			fmt.Fprintf(a.Out, "%s Configuração criada em %s\n", RenderStatus("ok"), path)
		}
		return ConfigData{Path: path, Config: cfg}, nil
	})
}

func (a *App) runConfigGet(key string) error {
	return OutputJSON(a.Out, a.jsonMode, "config get", func() (interface{}, error) {
		value, err := a.currentConfig().Get(key)
		if err != nil {
			return nil, NewCommandError("config get", err.Error(), err)
		}
		if !a.jsonMode {
			fmt.Fprintln(a.Out, value)
		}
		return ConfigValueData{Key: key, Value: value}, nil
	})
}

// runConfigSet edits the file itself, not the effective configuration,
// so environment overrides are never written back.
func (a *App) runConfigSet(key, value string) error {
	return OutputJSON(a.Out, a.jsonMode, "config set", func() (interface{}, error) {
		path, err := a.configFilePath()
		if err != nil {
			return nil, NewCommandError("config set", err.Error(), err)
		}

		cfg := config.Default()
		if _, statErr := os.Stat(path); statErr == nil {
			if err := readConfig(cfg, path); err != nil {
				return nil, NewCommandError("config set", err.Error(), err)
			}
		}

		if err := cfg.Set(key, value); err != nil {
			return nil, NewCommandError("config set", err.Error(), err)
		}
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			var errs config.ValidateErrors
			if errors.As(err, &errs) && len(errs) == 1 {
				return nil, NewCommandError("config set", errs[0].Error(), err)
			}
			return nil, NewCommandError("config set", err.Error(), err)
		}
		if err := writeConfig(cfg, path); err != nil {
			return nil, NewCommandError("config set", err.Error(), err)
		}

		newValue, _ := cfg.Get(key)
		if !a.jsonMode {
			fmt.Fprintf(a.Out, "%s %s = %v\n", RenderStatus("ok"), key, newValue)
		}
		return ConfigValueData{Key: key, Value: newValue}, nil
	})
}

func readConfig(cfg *config.Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return config.LoadJSON(cfg, path)
	}
	return config.LoadTOML(cfg, path)
}

func writeConfig(cfg *config.Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}
