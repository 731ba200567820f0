// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
)

// Refresher re-runs the widget fetch sequence, optionally for a new
// location. An empty location keeps the configured one.
type Refresher interface {
	Run(ctx context.Context, location string)
}

// RefreshHandler handles manual refresh requests.
type RefreshHandler struct {
	refresher Refresher
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(refresher Refresher) *RefreshHandler {
	return &RefreshHandler{refresher: refresher}
}

// HandleRefresh handles POST /refresh requests. The optional "location"
// query parameter switches the widget to a new place, mirroring the
// location input on the viewport itself.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrBadMethod)
		return
	}

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	h.refresher.Run(r.Context(), location)

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshed"})
}
