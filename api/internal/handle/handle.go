package handle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"focus-assistant/api/internal/types"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Assistant is the part of assistant.Service the HTTP layer needs.
type Assistant interface {
	Quote(ctx context.Context, lang string) (string, error)
	BreakSuggestion(ctx context.Context, lang string) (string, error)
	DeterminePriority(ctx context.Context, task, lang string) types.PriorityResult
}

type Handle struct {
	svc Assistant
	log *zap.Logger
}

func New(svc Assistant, log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{
		svc: svc,
		log: log,
	}
}

// Register mounts the API routes on mux.
func (h *Handle) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/quote", h.Quote)
	mux.HandleFunc("/api/break-suggestion", h.BreakSuggestion)
	mux.HandleFunc("/api/determine-priority", h.DeterminePriority)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, types.ErrorResponse{Error: msg})
}

// body is the union of the route payloads. Fields stay raw so a value of
// the wrong JSON type degrades to a default instead of failing the request.
type body struct {
	TaskContent json.RawMessage `json:"taskContent"`
	Language    json.RawMessage `json:"language"`
}

// language is the requested code, or "" (the default language) when absent
// or not a string.
func (b body) language() string {
	s, _ := stringField(b.Language)
	return s
}

// taskContent is the task text; non-string values are used as their JSON
// text, null counts as empty.
func (b body) taskContent() string {
	if s, ok := stringField(b.TaskContent); ok {
		return s
	}
	return string(bytes.TrimSpace(b.TaskContent))
}

func stringField(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeBody reads an optional JSON body. An empty body, or a valid JSON
// value that is not an object, yields the zero body; only unparsable input
// is an error.
func decodeBody(w http.ResponseWriter, r *http.Request) (body, error) {
	var raw json.RawMessage
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return body{}, nil
		}
		return body{}, fmt.Errorf("bad json: %w", err)
	}
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return body{}, nil
	}
	return b, nil
}

// preamble enforces POST and decodes the body; it writes the error response
// itself and reports whether the handler should continue.
func (h *Handle) preamble(w http.ResponseWriter, r *http.Request) (body, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return body{}, false
	}
	b, err := decodeBody(w, r)
	if err != nil {
		h.log.Debug("rejecting request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return body{}, false
	}
	return b, true
}
