// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command implementation.
//
// Command: status
// Short:   One service health check
// Aliases: s
//
// Examples:
//   megasena status                 Show service status
//   megasena status --json          Status as a JSON envelope
//
// Output Fields:
//   Endereço            Service address
//   Status              Reported status
//   Dados carregados    Whether historical data is loaded
//   Jogos no histórico  Number of historical draws
//   Última atualização  Last data refresh

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/megasena-tui/internal/logging"
	"github.com/jeranaias/megasena-tui/internal/ui/generator"
)

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Verifica o status do servidor",
		Args:    cobra.NoArgs,
		RunE:    a.runStatus,
	}
}

func (a *App) runStatus(cmd *cobra.Command, args []string) error {
	return OutputJSON(a.Out, a.jsonMode, "status", func() (interface{}, error) {
		status, err := a.service().Status(cmd.Context())
		if err != nil {
			logging.L().Error().Err(err).Msg("status check failed")
			return nil, NewCommandError("status", generator.MsgUnreachable, err)
		}

		data := StatusData{
			BaseURL:    a.BaseURL,
			Status:     status.Status,
			DataLoaded: status.DataLoaded,
			TotalGames: status.TotalGames,
			LastUpdate: status.LastUpdate,
		}

		if !status.DataLoaded {
			fmt.Fprintln(a.Err, WarningStyle.Render(generator.MsgNoData))
		}
		if !a.jsonMode {
			a.printStatus(data)
		}
		return data, nil
	})
}

func (a *App) printStatus(data StatusData) {
	loaded := "não"
	if data.DataLoaded {
		loaded = "sim"
	}
	lastUpdate := data.LastUpdate
	if lastUpdate == "" {
		lastUpdate = "-"
	}
	state := data.Status
	if state == "" {
		state = "online"
	}

	fmt.Fprintln(a.Out, TitleStyle.Render("Status do Servidor"))
	fmt.Fprintln(a.Out, RenderField("Endereço", data.BaseURL))
	fmt.Fprintln(a.Out, RenderField("Status", RenderStatus(state)+" "+state))
	fmt.Fprintln(a.Out, RenderField("Dados carregados", loaded))
	fmt.Fprintln(a.Out, RenderField("Jogos no histórico", strconv.Itoa(data.TotalGames)))
	fmt.Fprintln(a.Out, RenderField("Última atualização", lastUpdate))
}
