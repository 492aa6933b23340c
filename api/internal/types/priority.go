package types

// Priority is the task urgency class returned to callers.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the accepted values in keyword-scan order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Tier names the fallback step that produced a PriorityResult.
type Tier string

const (
	TierEmptyInput Tier = "empty_input"
	TierStructured Tier = "structured"
	TierKeyword    Tier = "keyword"
	TierDefault    Tier = "default"
	TierError      Tier = "error"
)

// PriorityRequest — body of POST /api/determine-priority.
type PriorityRequest struct {
	TaskContent string `json:"taskContent"`
	Language    string `json:"language"`
}

// PriorityResult — response of POST /api/determine-priority.
// Priority is always one of low|medium|high.
type PriorityResult struct {
	Priority    Priority `json:"priority"`
	Explanation string   `json:"explanation"`
	Error       string   `json:"error,omitempty"`

	Tier Tier `json:"-"`
}
