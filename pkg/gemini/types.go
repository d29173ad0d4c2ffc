package gemini

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("gemini: API key is required")
	ErrEmptyRequest  = errors.New("gemini: request has no messages")
)

// Config configures a Gemini client.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Request is a provider-neutral generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int
	// ResponseMIMEType constrains the output format, e.g. MIMETypeJSON.
	ResponseMIMEType string
}

// Response is the first candidate of a generation call.
type Response struct {
	Content Content
	Usage   *Usage
}

// Text concatenates all text parts of the response.
func (r *Response) Text() string {
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text string
}

// Wire format of the generateContent endpoint.
type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate    `json:"candidates"`
	UsageMetadata *geminiUsageMetadata `json:"usageMetadata,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
