package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"freezer-inventory/internal/item"
	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/foodparser"
	"freezer-inventory/pkg/llmprovider"
	"freezer-inventory/pkg/log"
)

// KnowledgeSource yields the knowledge base snapshot to parse with.
type KnowledgeSource interface {
	KnowledgeBase() *foodparser.KnowledgeBase
}

// Generator is the part of llmprovider.Manager the use case needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Config struct {
	DefaultExpirationDays int
	CandidateTimeout      time.Duration
	CacheSize             int
	CacheTTL              time.Duration
	MaxBatchItems         int
	BatchConcurrency      int
	// Now overrides the clock in tests.
	Now func() time.Time
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	l        log.Logger
	kb       KnowledgeSource
	llm      Generator
	dates    *datemath.Parser
	cache    *expirable.LRU[string, foodparser.Candidate]
	validate *validator.Validate
	cfg      Config
}

// New creates a new item UseCase. llm may be nil, which disables AI candidates.
func New(l log.Logger, kb KnowledgeSource, llm Generator, dates *datemath.Parser, cfg Config) item.UseCase {
	if cfg.DefaultExpirationDays <= 0 {
		cfg.DefaultExpirationDays = foodparser.DefaultExpirationDays
	}
	if cfg.CandidateTimeout <= 0 {
		cfg.CandidateTimeout = defaultCandidateTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.MaxBatchItems <= 0 {
		cfg.MaxBatchItems = defaultMaxBatchItems
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		l:        l,
		kb:       kb,
		llm:      llm,
		dates:    dates,
		cache:    expirable.NewLRU[string, foodparser.Candidate](cfg.CacheSize, nil, cfg.CacheTTL),
		validate: newCandidateValidator(),
		cfg:      cfg,
	}
}

func (uc *implUseCase) Categories() []foodparser.Category {
	out := make([]foodparser.Category, len(foodparser.Categories))
	copy(out, foodparser.Categories)
	return out
}
