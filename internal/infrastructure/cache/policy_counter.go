package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vahanafin/vahana/internal/domain/port"
)

// monthly counter keys expire well after the month ends so late reads still
// hit the cache instead of the database.
const counterTTL = 40 * 24 * time.Hour

// PolicyCounter implements port.PolicyCounter with a Redis counter in front
// of the policy repository. On a cache miss the count is rebuilt from the
// repository and written back.
type PolicyCounter struct {
	client *redis.Client
	repo   port.PolicyRepository
}

// NewPolicyCounter creates a Redis-backed counter.
func NewPolicyCounter(client *redis.Client, repo port.PolicyRepository) *PolicyCounter {
	return &PolicyCounter{client: client, repo: repo}
}

// MonthlyCount returns the number of policies quoted for the provider in the
// calendar month containing the given time.
func (c *PolicyCounter) MonthlyCount(ctx context.Context, providerID string, month time.Time) (int, error) {
	key := counterKey(providerID, month)

	count, err := c.client.Get(ctx, key).Int()
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("read policy counter: %w", err)
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	count, err = c.repo.CountByProviderSince(ctx, providerID, monthStart)
	if err != nil {
		return 0, fmt.Errorf("rebuild policy counter: %w", err)
	}

	if err := c.client.Set(ctx, key, count, counterTTL).Err(); err != nil {
		return 0, fmt.Errorf("write policy counter: %w", err)
	}
	return count, nil
}

// Increment bumps the provider's counter for the month. A missing key is
// left missing so the next read rebuilds from the repository, which already
// includes the new policy.
func (c *PolicyCounter) Increment(ctx context.Context, providerID string, month time.Time) error {
	key := counterKey(providerID, month)

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("check policy counter: %w", err)
	}
	if exists == 0 {
		return nil
	}

	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("increment policy counter: %w", err)
	}
	return nil
}

func counterKey(providerID string, month time.Time) string {
	return fmt.Sprintf("policies:%s:%s", providerID, month.UTC().Format("2006-01"))
}
