package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"freezer-inventory/internal/item"
	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/foodparser"
)

// Parse validates the input, optionally asks the LLM for a candidate and runs
// the deterministic parser. LLM failures never fail the call.
func (uc *implUseCase) Parse(ctx context.Context, input item.ParseInput) (item.ParseOutput, error) {
	if err := validateInput(input); err != nil {
		return item.ParseOutput{}, err
	}

	parsed := uc.parse(ctx, foodparser.New(uc.kb.KnowledgeBase()), input)
	return item.ParseOutput{Item: parsed}, nil
}

func (uc *implUseCase) parse(ctx context.Context, p *foodparser.Parser, input item.ParseInput) foodparser.ParsedItem {
	today := uc.dates.Today(uc.cfg.Now())

	candidate := input.Candidate
	if candidate == nil && input.UseAI && uc.llm != nil {
		candidate = uc.candidate(ctx, input.Text, today)
	}

	days := input.DefaultExpirationDays
	if days == 0 {
		days = uc.cfg.DefaultExpirationDays
	}

	parsed := p.Parse(foodparser.ParseRequest{
		Text:                  input.Text,
		DefaultExpirationDays: days,
		Candidate:             candidate,
		Today:                 today,
	})

	uc.l.Infof(ctx, "item parsed: name=%q source=%s category=%s expiration_date=%s",
		parsed.Name, parsed.ExpirationSource, parsed.Category, parsed.ExpirationDate.Format(datemath.DateLayout))
	return parsed
}

func validateInput(input item.ParseInput) error {
	if strings.TrimSpace(input.Text) == "" {
		return item.ErrEmptyInput
	}
	if utf8.RuneCountInString(input.Text) > item.MaxInputRunes {
		return item.ErrInputTooLong
	}
	if input.DefaultExpirationDays < 0 || input.DefaultExpirationDays > foodparser.MaxExpirationDays {
		return item.ErrInvalidDefaultDays
	}
	return nil
}
