// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the megasena command line.
//
// Without a subcommand the interactive generator screen starts. The
// headless commands talk to the same service and print either formatted
// text or a JSON envelope.
//
// # Commands
//
//	megasena                       Start the interactive screen (needs a TTY)
//	megasena tui                   Same as above
//	megasena status                One service health check
//	megasena gerar -d 6 -c 3       Generate games and print the cards
//	megasena version               Print version information
//	megasena config path|show|init|get|set
//
// # JSON Output
//
// Every command accepts --json and then prints one envelope on stdout:
//
//	{"success": true, "data": {...}, "error": null, "timestamp": "...", "command": "status"}
//
// Human-readable messages go to stderr in JSON mode.
//
// # Exit Codes
//
// 0 on success, 1 on any error.
package cli
