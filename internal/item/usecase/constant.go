package usecase

import "time"

const (
	defaultCandidateTimeout = 8 * time.Second
	defaultCacheSize        = 1024
	defaultMaxBatchItems    = 100
	defaultBatchConcurrency = 8

	candidateTemperature = 0.1
	candidateMaxTokens   = 512
)
