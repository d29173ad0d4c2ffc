package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"freezer-inventory/internal/item"
	"freezer-inventory/pkg/foodparser"
)

func TestParse(t *testing.T) {
	uc := newTestUseCase(nil, Config{DefaultExpirationDays: 45})

	tests := []struct {
		name       string
		input      item.ParseInput
		wantErr    error
		wantName   string
		wantDate   time.Time
		wantSource foodparser.ExpirationSource
	}{
		{
			name:       "Relative period",
			input:      item.ParseInput{Text: "Two bags of frozen peas, expires in 2 weeks"},
			wantName:   "frozen peas",
			wantDate:   day(2024, 1, 24),
			wantSource: foodparser.SourceExplicit,
		},
		{
			name:       "Configured default",
			input:      item.ParseInput{Text: "Ice cubes"},
			wantName:   "Ice cubes",
			wantDate:   day(2024, 2, 24),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Caller default overrides configured default",
			input:      item.ParseInput{Text: "Ice cubes", DefaultExpirationDays: 10},
			wantName:   "Ice cubes",
			wantDate:   day(2024, 1, 20),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "UseAI without LLM",
			input:      item.ParseInput{Text: "Chicken breast 500g", UseAI: true},
			wantName:   "Chicken breast",
			wantDate:   day(2024, 10, 6),
			wantSource: foodparser.SourceFoodKeeper,
		},
		{
			name:    "Empty text",
			input:   item.ParseInput{Text: ""},
			wantErr: item.ErrEmptyInput,
		},
		{
			name:    "Whitespace text",
			input:   item.ParseInput{Text: " \t\n"},
			wantErr: item.ErrEmptyInput,
		},
		{
			name:    "Too long",
			input:   item.ParseInput{Text: strings.Repeat("é", item.MaxInputRunes+1)},
			wantErr: item.ErrInputTooLong,
		},
		{
			name:    "Negative default days",
			input:   item.ParseInput{Text: "peas", DefaultExpirationDays: -1},
			wantErr: item.ErrInvalidDefaultDays,
		},
		{
			name:    "Default days above the bound",
			input:   item.ParseInput{Text: "Ice cubes", DefaultExpirationDays: foodparser.MaxExpirationDays + 1},
			wantErr: item.ErrInvalidDefaultDays,
		},
		{
			name:    "Default days overflow",
			input:   item.ParseInput{Text: "Ice cubes", DefaultExpirationDays: math.MaxInt},
			wantErr: item.ErrInvalidDefaultDays,
		},
		{
			name:       "Longest default days",
			input:      item.ParseInput{Text: "Ice cubes", DefaultExpirationDays: foodparser.MaxExpirationDays},
			wantName:   "Ice cubes",
			wantDate:   day(2024, 1, 10).AddDate(0, 0, foodparser.MaxExpirationDays),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Oversized period in text",
			input:      item.ParseInput{Text: "Ice cubes good for 9999999 days"},
			wantName:   "Ice cubes",
			wantDate:   day(2024, 2, 24),
			wantSource: foodparser.SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Parse(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Item.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", out.Item.Name, tt.wantName)
			}
			if !out.Item.ExpirationDate.Equal(tt.wantDate) {
				t.Errorf("ExpirationDate = %v, want %v", out.Item.ExpirationDate, tt.wantDate)
			}
			if out.Item.ExpirationSource != tt.wantSource {
				t.Errorf("ExpirationSource = %q, want %q", out.Item.ExpirationSource, tt.wantSource)
			}
		})
	}
}

func TestParseMaxLengthAccepted(t *testing.T) {
	uc := newTestUseCase(nil, Config{})
	if _, err := uc.Parse(context.Background(), item.ParseInput{Text: strings.Repeat("a", item.MaxInputRunes)}); err != nil {
		t.Fatalf("unexpected error at exactly %d runes: %v", item.MaxInputRunes, err)
	}
}

func TestParseWithAICandidate(t *testing.T) {
	gen := &mockGenerator{text: "Sure! ```json\n{\"name\": \"Organic peas\", \"quantity\": \"2\", \"category\": \"Fruits & Vegetables\", \"expirationDate\": \"2024-06-01\", \"tags\": [\"veg\"]}\n```"}
	uc := newTestUseCase(gen, Config{})

	in := item.ParseInput{Text: "Two bags of frozen peas", UseAI: true}
	out, err := uc.Parse(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Item
	if got.Name != "Organic peas" || got.Quantity != 2 || got.ExpirationSource != foodparser.SourceAI {
		t.Errorf("unexpected item: %+v", got)
	}
	if !got.ExpirationDate.Equal(day(2024, 6, 1)) {
		t.Errorf("ExpirationDate = %v", got.ExpirationDate)
	}
	if !gen.lastReq.JSONOutput || gen.lastReq.SystemInstruction == nil {
		t.Errorf("request should ask for JSON with a system prompt: %+v", gen.lastReq)
	}
	if !strings.Contains(gen.lastReq.SystemInstruction.Parts[0].Text, "2024-01-10") {
		t.Error("system prompt should carry today's date")
	}

	// Same text with different spacing and case hits the cache.
	if _, err := uc.Parse(context.Background(), item.ParseInput{Text: "two  bags of FROZEN peas", UseAI: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.callCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", gen.callCount())
	}
}

func TestParseAIFailuresFallBack(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{"Provider error", &mockGenerator{err: errors.New("boom")}},
		{"Not JSON", &mockGenerator{text: "I cannot help with that"}},
		{"Empty object", &mockGenerator{text: "{}"}},
		{"Timeout", &mockGenerator{block: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.gen, Config{CandidateTimeout: 20 * time.Millisecond})

			out, err := uc.Parse(context.Background(), item.ParseInput{Text: "Two bags of frozen peas, expires in 2 weeks", UseAI: true})
			if err != nil {
				t.Fatalf("LLM failure must not fail parsing: %v", err)
			}
			if out.Item.ExpirationSource != foodparser.SourceExplicit || out.Item.Name != "frozen peas" {
				t.Errorf("expected deterministic result, got %+v", out.Item)
			}
		})
	}
}

func TestParseSkipsLLM(t *testing.T) {
	gen := &mockGenerator{text: `{"name":"x"}`}
	uc := newTestUseCase(gen, Config{})

	if _, err := uc.Parse(context.Background(), item.ParseInput{Text: "peas"}); err != nil {
		t.Fatal(err)
	}
	supplied := &foodparser.Candidate{Name: "Green peas"}
	out, err := uc.Parse(context.Background(), item.ParseInput{Text: "peas", UseAI: true, Candidate: supplied})
	if err != nil {
		t.Fatal(err)
	}
	if out.Item.Name != "Green peas" {
		t.Errorf("Name = %q, want supplied candidate name", out.Item.Name)
	}
	if gen.callCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", gen.callCount())
	}
}

func TestCategories(t *testing.T) {
	uc := newTestUseCase(nil, Config{})
	got := uc.Categories()
	if len(got) != len(foodparser.Categories) {
		t.Fatalf("got %d categories", len(got))
	}
	got[0] = "mutated"
	if foodparser.Categories[0] == "mutated" {
		t.Error("Categories must return a copy")
	}
}
