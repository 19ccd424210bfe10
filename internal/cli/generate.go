// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// generate.go - Headless game generation.
//
// Command: gerar
// Short:   Generate games and print the cards
// Aliases: generate, g
//
// Examples:
//   megasena gerar                        Use the configured defaults
//   megasena gerar -d 8 -c 5              5 cards with 8 numbers each
//   megasena gerar -d 6 -c 1 --json       JSON envelope
//
// Flags:
//   -d, --dezenas N     Numbers per card, 6 to 12
//   -c, --cartoes N     Cards to generate, 1 to 10

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/megasena-tui/internal/logging"
	"github.com/jeranaias/megasena-tui/internal/model"
	"github.com/jeranaias/megasena-tui/internal/ui/components"
	"github.com/jeranaias/megasena-tui/internal/ui/generator"
)

func (a *App) newGenerateCommand() *cobra.Command {
	var dezenas, cartoes int

	cmd := &cobra.Command{
		Use:     "gerar",
		Aliases: []string{"generate", "g"},
		Short:   "Gera jogos e imprime os cartões",
		Example: "  megasena gerar -d 6 -c 3\n  megasena gerar --dezenas 8 --cartoes 2 --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.currentConfig()
			req := model.GenerationRequest{Dezenas: dezenas, Cartoes: cartoes}
			if !cmd.Flags().Changed("dezenas") {
				req.Dezenas = cfg.UI.DefaultDezenas
			}
			if !cmd.Flags().Changed("cartoes") {
				req.Cartoes = cfg.UI.DefaultCartoes
			}
			return a.runGenerate(cmd, req)
		},
	}

	cmd.Flags().IntVarP(&dezenas, "dezenas", "d", model.MinDezenas,
		fmt.Sprintf("Dezenas por cartão (%d-%d)", model.MinDezenas, model.MaxDezenas))
	cmd.Flags().IntVarP(&cartoes, "cartoes", "c", model.MinCartoes,
		fmt.Sprintf("Quantidade de cartões (%d-%d)", model.MinCartoes, model.MaxCartoes))
	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, req model.GenerationRequest) error {
	log := logging.With("cli")

	return OutputJSON(a.Out, a.jsonMode, "gerar", func() (interface{}, error) {
		if err := req.Validate(); err != nil {
			log.Debug().Err(err).Msg("generate rejected")
			return nil, NewCommandError("gerar", err.Error(), err)
		}

		start := a.Now()
		result, err := a.service().GenerateGames(cmd.Context(), req)
		finished := a.Now()
		roundTrip := finished.Sub(start)
		if err != nil {
			log.Error().Err(err).Dur("round_trip", roundTrip).Msg("generate failed")
			return nil, NewCommandError("gerar", generator.GenerateErrorText(err), err)
		}

		log.Info().
			Int("jogos", len(result.Jogos)).
			Float64("tempo_execucao", result.TempoExecucao).
			Dur("round_trip", roundTrip).
			Msg("generate finished")

		if !a.jsonMode {
			list := components.NewCardList()
			list.SetAnimate(false)
			list.SetResults(result.Jogos, result.TempoExecucao, roundTrip, finished)
			fmt.Fprintln(a.Out, list.View())
		}

		return GenerateData{
			Dezenas:       req.Dezenas,
			Cartoes:       req.Cartoes,
			Jogos:         result.Jogos,
			TempoExecucao: result.TempoExecucao,
			TempoTotal:    roundTrip.Seconds(),
			Timestamp:     result.Timestamp,
		}, nil
	})
}
