// Package resolve turns a seed string into an external document URL by
// trying an ordered chain of candidate templates. Attempts run strictly
// in order, the first success short-circuits, and an exhausted chain is
// an outcome, not a panic. Ordering and cost predictability are chosen
// over latency: there is no parallel racing.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrExhausted reports that every candidate in the chain, including the
// terminal default, failed its attempt.
var ErrExhausted = errors.New("resolve: all candidates exhausted")

// Candidate builds one candidate URL from the seed. An error means the
// candidate cannot even be constructed and the chain moves on.
type Candidate func(seed string) (string, error)

// Probe attempts one candidate URL. Any non-nil error means "try the
// next candidate"; nil means the resolution succeeded.
type Probe func(ctx context.Context, url string) error

// Resolver evaluates candidate chains with a single probe policy.
type Resolver struct {
	probe  Probe
	logger *zap.Logger
}

// New builds a Resolver. probe must not be nil; logger may be.
func New(probe Probe, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{probe: probe, logger: logger}
}

// Resolve attempts each candidate in order and returns the first URL
// whose probe succeeds. Construction failures and probe failures alike
// advance the chain. When everything fails the result is ErrExhausted.
func (r *Resolver) Resolve(ctx context.Context, seed string, chain []Candidate) (string, error) {
	for i, candidate := range chain {
		url, err := candidate(seed)
		if err != nil {
			r.logger.Debug("candidate construction failed",
				zap.Int("attempt", i), zap.Error(err))
			continue
		}
		if err := r.probe(ctx, url); err != nil {
			r.logger.Debug("candidate probe failed",
				zap.Int("attempt", i), zap.String("url", url), zap.Error(err))
			continue
		}
		return url, nil
	}
	return "", ErrExhausted
}

// LinkProbe checks reachability with one HEAD request; 2xx and 3xx
// count as success. Used by consumers that need the document to exist.
func LinkProbe(client *http.Client) Probe {
	return func(ctx context.Context, url string) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil
	}
}

// NopProbe accepts every constructed URL. The fire-and-forget link
// opener uses it: no confirmation is available after handing a URL to
// the host, so success is defined as construction succeeding.
func NopProbe() Probe {
	return func(context.Context, string) error { return nil }
}
