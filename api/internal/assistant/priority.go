package assistant

import (
	"encoding/json"
	"strings"

	"focus-assistant/api/internal/llm"
	"focus-assistant/api/internal/types"
	"focus-assistant/api/internal/util"

	"github.com/xeipuuv/gojsonschema"
)

const (
	ExplanationEmptyInput = "No task content provided. Default priority assigned."
	ExplanationKeyword    = "Based on AI analysis of the task content."
	ExplanationDefault    = "AI couldn't determine priority clearly. Medium priority assigned by default."
	ExplanationError      = "Error in AI processing. Default priority assigned."
)

// priorityKeywords are matched against the lowercased model text, tiers in
// types.Priorities order; the first tier with any hit wins.
var priorityKeywords = map[types.Priority][]string{
	types.PriorityLow:    {"low", "baja", "निम्न"},
	types.PriorityMedium: {"medium", "media", "मध्यम"},
	types.PriorityHigh:   {"high", "alta", "उच्च"},
}

// priorityResponseSchema is what the model is asked to produce.
var priorityResponseSchema = &llm.ObjectSchema{
	Fields: []llm.Field{
		{Name: "priority", Description: "Task priority", Enum: []string{"low", "medium", "high"}},
		{Name: "explanation", Description: "Short reason for the chosen priority"},
	},
	Required: []string{"priority", "explanation"},
}

// priorityDocSchema is what an extracted object must satisfy to be trusted.
var priorityDocSchema = mustSchema(`{
  "type": "object",
  "required": ["priority"],
  "properties": {
    "priority": {"type": "string", "enum": ["low", "medium", "high"]}
  }
}`)

func mustSchema(s string) *gojsonschema.Schema {
	sch, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return sch
}

// ResolvePriority coerces raw model output into a valid result. Tiers:
// first {...} span validated against the schema, then keyword scan, then
// the medium default. It never fails.
func ResolvePriority(raw string) types.PriorityResult {
	if res, ok := structuredPriority(raw); ok {
		return res
	}
	if p, ok := keywordPriority(raw); ok {
		return types.PriorityResult{Priority: p, Explanation: ExplanationKeyword, Tier: types.TierKeyword}
	}
	return types.PriorityResult{
		Priority:    types.PriorityMedium,
		Explanation: ExplanationDefault,
		Tier:        types.TierDefault,
	}
}

func structuredPriority(raw string) (types.PriorityResult, bool) {
	span, ok := util.FirstJSONObject(raw)
	if !ok {
		return types.PriorityResult{}, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return types.PriorityResult{}, false
	}
	res, err := priorityDocSchema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil || !res.Valid() {
		return types.PriorityResult{}, false
	}

	p, _ := obj["priority"].(string)
	explanation, ok := obj["explanation"].(string)
	if !ok {
		explanation = ExplanationKeyword
	}
	return types.PriorityResult{
		Priority:    types.Priority(p),
		Explanation: explanation,
		Tier:        types.TierStructured,
	}, true
}

func keywordPriority(raw string) (types.Priority, bool) {
	lower := strings.ToLower(raw)
	for _, p := range types.Priorities {
		for _, kw := range priorityKeywords[p] {
			if strings.Contains(lower, kw) {
				return p, true
			}
		}
	}
	return "", false
}
