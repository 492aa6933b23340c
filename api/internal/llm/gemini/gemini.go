package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focus-assistant/api/internal/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Decoding parameters shared by every call.
const (
	temperature     float32 = 0.7
	topP            float32 = 0.95
	topK            int32   = 40
	maxOutputTokens int32   = 100
)

var safetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
}

type Engine struct {
	Model string
	cl    *genai.Client
}

// New dials the Gemini API once; the client is shared by all requests and
// must be released with Close.
func New(ctx context.Context, apiKey, model string) (*Engine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Engine{
		Model: strings.TrimSpace(model),
		cl:    cl,
	}, nil
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Close() error {
	if e.cl == nil {
		return nil
	}
	return e.cl.Close()
}

func (e *Engine) Generate(ctx context.Context, req llm.Request) (string, error) {
	m := e.cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	configure(m, req.Schema)

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	txt := strings.TrimSpace(firstText(resp))
	if txt == "" {
		return "", llm.ErrEmptyResponse
	}
	return txt, nil
}

func configure(m *genai.GenerativeModel, schema *llm.ObjectSchema) {
	m.SetTemperature(temperature)
	m.SetTopP(topP)
	m.SetTopK(topK)
	m.SetMaxOutputTokens(maxOutputTokens)
	m.SafetySettings = safetySettings
	if schema != nil {
		m.ResponseMIMEType = "application/json"
		m.ResponseSchema = toGenaiSchema(schema)
	}
}

func toGenaiSchema(s *llm.ObjectSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		fs := &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
		}
		if len(f.Enum) > 0 {
			fs.Format = "enum"
			fs.Enum = append([]string(nil), f.Enum...)
		}
		props[f.Name] = fs
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   append([]string(nil), s.Required...),
	}
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
