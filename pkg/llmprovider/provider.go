package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput asks the provider for a bare JSON document.
	JSONOutput bool
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserText builds a single-turn request.
func UserText(system, text string) *Request {
	req := &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: text}}}},
	}
	if system != "" {
		req.SystemInstruction = &Message{Role: "system", Parts: []Part{{Text: system}}}
	}
	return req
}
