package llmprovider

import (
	"context"

	"freezer-inventory/pkg/gemini"
)

const providerGemini = "gemini"

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	geminiReq := &gemini.Request{
		Messages:    convertToGeminiContents(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		sys := convertToGeminiContent(*req.SystemInstruction)
		geminiReq.SystemInstruction = &sys
	}
	if req.JSONOutput {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: providerGemini, Err: err}
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: providerGemini,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	out := make([]gemini.Content, len(msgs))
	for i, m := range msgs {
		out[i] = convertToGeminiContent(m)
	}
	return out
}

func convertToGeminiContent(m Message) gemini.Content {
	role := m.Role
	if role == "assistant" {
		role = gemini.RoleModel
	}
	parts := make([]gemini.Part, len(m.Parts))
	for i, p := range m.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return gemini.Content{Role: role, Parts: parts}
}

func convertFromGeminiContent(c gemini.Content) Message {
	role := c.Role
	if role == gemini.RoleModel {
		role = "assistant"
	}
	parts := make([]Part, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: role, Parts: parts}
}
