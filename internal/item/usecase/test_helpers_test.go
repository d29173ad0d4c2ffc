package usecase

import (
	"context"
	"sync"
	"time"

	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/foodparser"
	"freezer-inventory/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator answers every request with text or err.
type mockGenerator struct {
	mu       sync.Mutex
	text     string
	err      error
	block    bool
	calls    int
	lastReq  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.calls++
	m.lastReq = req
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.text}}},
		Usage:   &llmprovider.Usage{},
	}, nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type staticKnowledge struct {
	kb *foodparser.KnowledgeBase
}

func (s staticKnowledge) KnowledgeBase() *foodparser.KnowledgeBase { return s.kb }

var testNow = time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(gen Generator, cfg Config) *implUseCase {
	dates, _ := datemath.NewParser("UTC")
	cfg.Now = func() time.Time { return testNow }
	return New(&mockLogger{}, staticKnowledge{kb: foodparser.DefaultKnowledgeBase()}, gen, dates, cfg).(*implUseCase)
}
