// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secrets-api/internal/utils"
)

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	secrets, err := h.services.SecretService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, secrets, http.StatusOK)
}
