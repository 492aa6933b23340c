package handle

import (
	"net/http"

	"focus-assistant/api/internal/types"
)

// DeterminePriority answers 200 even when the model failed; the degraded
// result carries an "error" field instead.
func (h *Handle) DeterminePriority(w http.ResponseWriter, r *http.Request) {
	b, ok := h.preamble(w, r)
	if !ok {
		return
	}
	req := types.PriorityRequest{TaskContent: b.taskContent(), Language: b.language()}

	res := h.svc.DeterminePriority(r.Context(), req.TaskContent, req.Language)
	writeJSON(w, http.StatusOK, res)
}
