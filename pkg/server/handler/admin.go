/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler

import (
	"net/http"
	"strconv"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type statusResponse struct {
	Status string `json:"status"`
}

func (h *Handler) GetAdminHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, r, http.StatusOK, &statusResponse{Status: "ok"})
}

// GetAdminState dumps every booking keyed by ID.
func (h *Handler) GetAdminState(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Snapshot()

	result := make(map[string]any, len(snapshot))

	for id, booking := range snapshot {
		result[strconv.Itoa(id)] = booking
	}

	h.setUncacheable(w)
	writeJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostAdminReset(w http.ResponseWriter, r *http.Request) {
	h.store.Reset()

	log.FromContext(r.Context()).Info("state reset")

	writeJSONResponse(w, r, http.StatusOK, &statusResponse{Status: "reset"})
}
