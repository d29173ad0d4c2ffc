package foodparser

import (
	"encoding/json"
	"time"

	"freezer-inventory/pkg/datemath"
)

// DefaultExpirationDays is used when the caller supplies no positive default.
const DefaultExpirationDays = 30

// MaxExpirationDays bounds every day count and period the parser accepts.
const MaxExpirationDays = 36500

// MaxTags caps the number of tags on a ParsedItem.
const MaxTags = 3

// UnnamedItem replaces a name that is empty after extraction.
const UnnamedItem = "Unnamed item"

// ExpirationSource records which tier produced the expiration date.
type ExpirationSource string

const (
	SourceAI         ExpirationSource = "ai"
	SourceExplicit   ExpirationSource = "explicit"
	SourceFoodKeeper ExpirationSource = "foodkeeper"
	SourceDefault    ExpirationSource = "default"
)

// ParsedItem is the structured inventory record produced for one input.
// ExpirationDate is always a midnight calendar date.
type ParsedItem struct {
	Name             string           `json:"name"`
	Quantity         int              `json:"quantity"`
	Category         Category         `json:"category"`
	Size             string           `json:"size"`
	ExpirationDate   time.Time        `json:"expirationDate"`
	Tags             []string         `json:"tags"`
	ExpirationSource ExpirationSource `json:"expirationSource"`
}

// MarshalJSON renders ExpirationDate as YYYY-MM-DD.
func (p ParsedItem) MarshalJSON() ([]byte, error) {
	type alias ParsedItem
	return json.Marshal(struct {
		alias
		ExpirationDate string `json:"expirationDate"`
	}{
		alias:          alias(p),
		ExpirationDate: p.ExpirationDate.Format(datemath.DateLayout),
	})
}

// Candidate is a partial record proposed by an upstream model. Empty or
// invalid fields are treated as absent; a Category outside the closed set is
// absent too, so the item is classified from its name instead of becoming Other.
type Candidate struct {
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	Category       string   `json:"category"`
	Size           string   `json:"size"`
	ExpirationDate string   `json:"expirationDate"`
	Tags           []string `json:"tags"`
}

// Extraction is the structural breakdown of one raw input string.
type Extraction struct {
	Name           string
	Quantity       int
	Size           string
	Tags           []string
	ExplicitDate   *time.Time
	ExplicitPeriod *datemath.Period
}
