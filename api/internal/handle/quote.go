package handle

import (
	"net/http"

	"focus-assistant/api/internal/types"
)

func (h *Handle) Quote(w http.ResponseWriter, r *http.Request) {
	b, ok := h.preamble(w, r)
	if !ok {
		return
	}
	req := types.LanguageRequest{Language: b.language()}

	quote, err := h.svc.Quote(r.Context(), req.Language)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, types.QuoteResponse{Quote: quote, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, types.QuoteResponse{Quote: quote})
}

func (h *Handle) BreakSuggestion(w http.ResponseWriter, r *http.Request) {
	b, ok := h.preamble(w, r)
	if !ok {
		return
	}
	req := types.LanguageRequest{Language: b.language()}

	suggestion, err := h.svc.BreakSuggestion(r.Context(), req.Language)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, types.SuggestionResponse{Suggestion: suggestion, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, types.SuggestionResponse{Suggestion: suggestion})
}
