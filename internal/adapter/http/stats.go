package httpadapter

import "net/http"

// handleDonationStats returns the donation stats overview. Always 200: a
// store failure degrades to the zero-valued shape with an error field, not
// an error status.
func (h *Handler) handleDonationStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.stats.Overview(r.Context()))
}
