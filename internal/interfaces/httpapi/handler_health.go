package httpapi

import "net/http"

type healthStatus struct {
	Status string `json:"status"`
}

// Healthz reports liveness and does not touch the stores.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, healthStatus{Status: "ok"})
}
