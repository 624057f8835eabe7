package v1

import (
	"net/http"

	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/roster"
)

// ListItems handles GET /items?skip=&limit=
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	win, err := parseWindow(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if win.empty {
		respondJSON(w, r, http.StatusOK, []*Item{})
		return
	}

	out, err := h.roster.ListItems(r.Context(), &roster.ListItemsInput{Offset: win.offset, Limit: win.limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toItems(out.Items))
}
