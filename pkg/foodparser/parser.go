package foodparser

import (
	"strings"
	"time"

	"freezer-inventory/pkg/datemath"
)

// Parser turns freeform item descriptions into ParsedItems using one
// immutable KnowledgeBase. It is safe for concurrent use.
type Parser struct {
	kb *KnowledgeBase
}

// New creates a Parser over kb; nil selects DefaultKnowledgeBase.
func New(kb *KnowledgeBase) *Parser {
	if kb == nil {
		kb = DefaultKnowledgeBase()
	}
	return &Parser{kb: kb}
}

// KnowledgeBase returns the tables the parser was built with.
func (p *Parser) KnowledgeBase() *KnowledgeBase {
	return p.kb
}

// ParseRequest is the input of Parse.
type ParseRequest struct {
	Text string
	// DefaultExpirationDays outside 1..MaxExpirationDays selects
	// DefaultExpirationDays.
	DefaultExpirationDays int
	Candidate             *Candidate
	// Today is the reference day; the zero value means time.Now().
	Today time.Time
}

// Parse always returns a fully populated item. Candidate fields win over
// extracted ones when they are present and valid; the expiration date is
// resolved by Resolve.
func (p *Parser) Parse(req ParseRequest) ParsedItem {
	defaultDays := req.DefaultExpirationDays
	if !validDays(defaultDays) {
		defaultDays = DefaultExpirationDays
	}

	today := req.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = datemath.StartOfDay(today)

	ex := Extract(req.Text)
	c := req.Candidate
	if c == nil {
		c = &Candidate{}
	}

	item := ParsedItem{
		Name:     ex.Name,
		Quantity: ex.Quantity,
		Size:     ex.Size,
	}

	if name := strings.TrimSpace(c.Name); name != "" {
		item.Name = name
	}
	if item.Name == "" {
		item.Name = UnnamedItem
	}

	if c.Quantity >= 1 {
		item.Quantity = c.Quantity
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if size := strings.TrimSpace(c.Size); size != "" {
		item.Size = size
	}

	if category, ok := ParseCategory(c.Category); ok {
		item.Category = category
	} else {
		item.Category = p.kb.Classify(item.Name)
	}

	item.Tags = normalizeTags(c.Tags)
	if len(item.Tags) == 0 {
		item.Tags = ex.Tags
	}
	if len(item.Tags) == 0 {
		item.Tags = p.kb.SuggestTags(item.Name, item.Category)
	}

	res := Resolve(ResolveInput{
		AIDate:         c.ExpirationDate,
		ExplicitDate:   ex.ExplicitDate,
		ExplicitPeriod: ex.ExplicitPeriod,
		ShelfLifeDays:  p.kb.LookupShelfLife(item.Name, item.Category, defaultDays),
		DefaultDays:    defaultDays,
		Today:          today,
	})
	item.ExpirationDate = res.Date
	item.ExpirationSource = res.Source

	return item
}
