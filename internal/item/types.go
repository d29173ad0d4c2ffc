package item

import "freezer-inventory/pkg/foodparser"

// MaxInputRunes bounds a single description.
const MaxInputRunes = 500

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
	// DefaultExpirationDays of 0 selects the configured default.
	DefaultExpirationDays int
	// UseAI asks the configured LLM for a candidate when Candidate is nil.
	UseAI     bool
	Candidate *foodparser.Candidate
}

type ParseBatchInput struct {
	Items []ParseInput
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Item foodparser.ParsedItem
}

type ParseBatchOutput struct {
	// Items is in input order.
	Items []foodparser.ParsedItem
}
