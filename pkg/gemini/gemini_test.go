package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freezer-inventory/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/test-model:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := req["contents"].([]any)
		text := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		gc, _ := req["generationConfig"].(map[string]any)
		if text == "want_json" && (gc == nil || gc["responseMimeType"] != gemini.MIMETypeJSON) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "mocked "}, {"text": "response"}], "role": "model"}}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "test-model", APIURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "Hello world"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response" {
			t.Errorf("Text() = %q", resp.Text())
		}
		if resp.Usage.TotalTokens != 15 || resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 3 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("JSON mime type", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages:         []gemini.Content{{Parts: []gemini.Part{{Text: "want_json"}}}},
			ResponseMIMEType: gemini.MIMETypeJSON,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected APIError 500, got %v", err)
		}
	})

	t.Run("Empty request", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{})
		if !errors.Is(err, gemini.ErrEmptyRequest) {
			t.Fatalf("expected ErrEmptyRequest, got %v", err)
		}
	})
}

func TestNewValidation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want %q", client.Model(), gemini.DefaultModel)
	}
}
