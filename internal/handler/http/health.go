// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/payout-gateway/internal/utils"
)

type connectorStatus struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type healthResponse struct {
	Status     string            `json:"status"`
	Connectors []connectorStatus `json:"connectors"`
}

// health is the liveness probe. It always answers 200 and lists the last
// known state of every connector.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Connectors: []connectorStatus{}}

	if registry := h.services.Connectors; registry != nil {
		for _, c := range registry.Connectors() {
			status := connectorStatus{Name: c.Name, Healthy: registry.IsHealthy(c.Name)}
			if last, ok := registry.Health(c.Name); ok {
				status.Error = last.LastError
			}
			resp.Connectors = append(resp.Connectors, status)
		}
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("failed to write health response")
	}
}
