// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/payout-gateway/internal/utils"
	"github.com/MKhiriev/payout-gateway/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	resp := models.VersionResponse{
		AppVersion:   h.services.AppInfoService.GetAppVersion(r.Context()),
		BuildVersion: h.buildInfo.BuildVersion(),
		BuildDate:    h.buildInfo.BuildDate(),
		BuildCommit:  h.buildInfo.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("failed to write version response")
	}
}
