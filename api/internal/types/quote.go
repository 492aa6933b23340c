package types

// LanguageRequest — body of POST /api/quote and POST /api/break-suggestion.
type LanguageRequest struct {
	Language string `json:"language"`
}

type QuoteResponse struct {
	Quote string `json:"quote"`
	Error string `json:"error,omitempty"`
}

type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
	Error      string `json:"error,omitempty"`
}

// ErrorResponse is used for requests rejected before reaching the model.
type ErrorResponse struct {
	Error string `json:"error"`
}
