package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// WaitForUpstream polls healthURL with exponential backoff until it answers 2xx
// or maxWait elapses. maxWait <= 0 skips the check.
func WaitForUpstream(ctx context.Context, client *http.Client, healthURL string, maxWait time.Duration) error {
	if maxWait <= 0 {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxWait

	attempt := 0
	probe := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("upstream health returned %d", resp.StatusCode)
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		zap.L().Warn("upstream not ready",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(probe, backoff.WithContext(b, ctx), notify); err != nil {
		return fmt.Errorf("upstream %s not ready after %s: %w", healthURL, maxWait, err)
	}
	zap.L().Info("upstream ready", zap.String("url", healthURL), zap.Int("attempts", attempt))
	return nil
}
