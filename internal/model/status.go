// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// ServerStatus is the body of GET /status.
type ServerStatus struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"dados_carregados"`
	TotalGames int    `json:"total_jogos_historico"`
	LastUpdate string `json:"ultima_atualizacao"`
}

// Online reports whether the service described itself as online.
// An empty status is accepted since only the HTTP result gates the UI.
func (s ServerStatus) Online() bool {
	return s.Status == "" || s.Status == "online"
}
