package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Bureau identifies a credit bureau provider.
type Bureau string

const (
	BureauCIBIL    Bureau = "CIBIL"
	BureauExperian Bureau = "EXPERIAN"
	BureauCRIF     Bureau = "CRIF"
)

// CreditBureauConfig holds configuration for the credit bureau adapter.
type CreditBureauConfig struct {
	PrimaryBureau  Bureau
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	MaxRetries     int
	RetryBackoffMs int
}

// DefaultCreditBureauConfig returns sensible defaults for development.
func DefaultCreditBureauConfig() CreditBureauConfig {
	return CreditBureauConfig{
		PrimaryBureau:  BureauCIBIL,
		BaseURL:        "https://api.creditbureau.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

// BureauHTTPClient makes credit score pulls against a bureau API. It exists
// so tests can substitute a mock for the real HTTP transport.
type BureauHTTPClient interface {
	FetchScore(ctx context.Context, bureau Bureau, pan string) (int, error)
}

// CreditBureauAdapter implements port.CreditBureauClient. With a nil client
// it returns deterministic simulated scores, which keeps development and
// tests reproducible; a real client is swapped in for CIBIL, Experian or
// CRIF integration.
type CreditBureauAdapter struct {
	config CreditBureauConfig
	client BureauHTTPClient
}

// NewCreditBureauAdapter creates a new adapter. A nil client selects
// simulated responses.
func NewCreditBureauAdapter(config CreditBureauConfig, client BureauHTTPClient) *CreditBureauAdapter {
	return &CreditBureauAdapter{config: config, client: client}
}

// GetCreditScore retrieves the bureau score for a PAN.
func (a *CreditBureauAdapter) GetCreditScore(ctx context.Context, pan string) (int, error) {
	if pan == "" {
		return 0, fmt.Errorf("PAN is required")
	}

	if a.client != nil {
		score, err := a.fetchWithRetry(ctx, pan)
		if err != nil {
			return 0, fmt.Errorf("credit bureau request failed: %w", err)
		}
		return score, nil
	}

	return simulateScore(pan), nil
}

// fetchWithRetry calls the bureau API with exponential backoff.
func (a *CreditBureauAdapter) fetchWithRetry(ctx context.Context, pan string) (int, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		score, err := a.client.FetchScore(ctx, a.config.PrimaryBureau, pan)
		if err == nil {
			return score, nil
		}
		lastErr = err
	}

	return 0, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

// simulateScore derives a repeatable score in [300, 900] from the PAN hash.
func simulateScore(pan string) int {
	h := sha256.Sum256([]byte(pan))
	return 300 + int(binary.BigEndian.Uint32(h[:4])%601)
}
