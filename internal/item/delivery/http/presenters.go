package http

import (
	"freezer-inventory/internal/item"
	"freezer-inventory/pkg/foodparser"
)

// --- Request DTOs ---

type candidateReq struct {
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	Category       string   `json:"category"`
	Size           string   `json:"size"`
	ExpirationDate string   `json:"expirationDate"`
	Tags           []string `json:"tags"`
}

// parseReq leaves text and day validation to the use case so that single and
// batch requests report the same errors.
type parseReq struct {
	Text                  string        `json:"text"`
	DefaultExpirationDays int           `json:"defaultExpirationDays"`
	UseAI                 bool          `json:"useAi"`
	Candidate             *candidateReq `json:"candidate"`
}

func (r parseReq) toInput() item.ParseInput {
	in := item.ParseInput{
		Text:                  r.Text,
		DefaultExpirationDays: r.DefaultExpirationDays,
		UseAI:                 r.UseAI,
	}
	if r.Candidate != nil {
		in.Candidate = &foodparser.Candidate{
			Name:           r.Candidate.Name,
			Quantity:       r.Candidate.Quantity,
			Category:       r.Candidate.Category,
			Size:           r.Candidate.Size,
			ExpirationDate: r.Candidate.ExpirationDate,
			Tags:           r.Candidate.Tags,
		}
	}
	return in
}

// ---

type parseBatchReq struct {
	Items []parseReq `json:"items"`
}

func (r parseBatchReq) toInput() item.ParseBatchInput {
	items := make([]item.ParseInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.toInput()
	}
	return item.ParseBatchInput{Items: items}
}

// --- Response DTOs ---

type parseResp struct {
	Item foodparser.ParsedItem `json:"item"`
}

func (h *handler) newParseResp(out item.ParseOutput) parseResp {
	return parseResp{Item: out.Item}
}

type parseBatchResp struct {
	Items []foodparser.ParsedItem `json:"items"`
	Count int                     `json:"count"`
}

func (h *handler) newParseBatchResp(out item.ParseBatchOutput) parseBatchResp {
	return parseBatchResp{
		Items: out.Items,
		Count: len(out.Items),
	}
}

type categoriesResp struct {
	Categories []foodparser.Category `json:"categories"`
}
