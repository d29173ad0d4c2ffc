package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/foodparser"
	"freezer-inventory/pkg/llmprovider"
)

var errEmptyCandidate = errors.New("candidate has no usable fields")

// candidate asks the LLM for a partial record. Any failure is logged and
// yields nil so the deterministic parser runs on its own.
func (uc *implUseCase) candidate(ctx context.Context, text string, today time.Time) *foodparser.Candidate {
	key := cacheKey(text, today)
	if c, ok := uc.cache.Get(key); ok {
		return &c
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.CandidateTimeout)
	defer cancel()

	req := llmprovider.UserText(buildCandidatePrompt(today), text)
	req.JSONOutput = true
	req.Temperature = candidateTemperature
	req.MaxTokens = candidateMaxTokens

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "AI candidate unavailable: %v", err)
		return nil
	}

	c, err := uc.decodeCandidate(resp.Text())
	if err != nil {
		uc.l.Warnf(ctx, "AI candidate discarded: %v", err)
		return nil
	}

	uc.cache.Add(key, c)
	return &c
}

// cacheKey includes today because relative dates in the answer depend on it.
func cacheKey(text string, today time.Time) string {
	return today.Format(datemath.DateLayout) + "|" + strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// candidatePayload is the validated shape of an LLM answer.
type candidatePayload struct {
	Name           string   `validate:"omitempty,max=200"`
	Quantity       int      `validate:"omitempty,min=1,max=10000"`
	Category       string   `validate:"omitempty,food_category"`
	Size           string   `validate:"omitempty,max=32"`
	ExpirationDate string   `validate:"omitempty,datetime=2006-01-02"`
	Tags           []string `validate:"omitempty,max=10,dive,required,max=32"`
}

func newCandidateValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("food_category", func(fl validator.FieldLevel) bool {
		_, ok := foodparser.ParseCategory(fl.Field().String())
		return ok
	})
	return v
}

// decodeCandidate is tolerant: fields of the wrong type or failing validation
// are dropped one by one instead of rejecting the whole answer.
func (uc *implUseCase) decodeCandidate(raw string) (foodparser.Candidate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &fields); err != nil {
		return foodparser.Candidate{}, fmt.Errorf("decode: %w", err)
	}

	p := candidatePayload{
		Name:           decodeString(fields["name"]),
		Quantity:       decodeInt(fields["quantity"]),
		Category:       decodeString(fields["category"]),
		Size:           decodeString(fields["size"]),
		ExpirationDate: datePart(decodeString(fields["expirationDate"])),
		Tags:           decodeStrings(fields["tags"]),
	}

	if err := uc.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return foodparser.Candidate{}, err
		}
		for _, fe := range verrs {
			dropField(&p, fe.StructField())
		}
	}

	c := foodparser.Candidate{
		Name:           p.Name,
		Quantity:       p.Quantity,
		Category:       p.Category,
		Size:           p.Size,
		ExpirationDate: p.ExpirationDate,
		Tags:           p.Tags,
	}
	if c.Name == "" && c.Quantity == 0 && c.Category == "" && c.Size == "" && c.ExpirationDate == "" && len(c.Tags) == 0 {
		return foodparser.Candidate{}, errEmptyCandidate
	}
	return c, nil
}

func dropField(p *candidatePayload, field string) {
	switch {
	case field == "Name":
		p.Name = ""
	case field == "Quantity":
		p.Quantity = 0
	case field == "Category":
		p.Category = ""
	case field == "Size":
		p.Size = ""
	case field == "ExpirationDate":
		p.ExpirationDate = ""
	case strings.HasPrefix(field, "Tags"):
		p.Tags = nil
	}
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// decodeInt accepts 2, 2.0 and "2".
func decodeInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		if f != float64(int(f)) {
			return 0
		}
		return int(f)
	}
	if n, err := strconv.Atoi(decodeString(raw)); err == nil {
		return n
	}
	return 0
}

// decodeStrings accepts a string array or a single comma-separated string.
func decodeStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	if s := decodeString(raw); s != "" {
		return strings.Split(s, ",")
	}
	return nil
}

// datePart reduces an RFC3339 timestamp to its calendar date.
func datePart(s string) string {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Format(datemath.DateLayout)
	}
	return s
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}
