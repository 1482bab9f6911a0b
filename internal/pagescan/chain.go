package pagescan

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Chain tries scanners in priority order, returning the first success.
// Typical order is browser then static, so JS-rendered pages get the
// full DOM and everything else still produces an inventory.
type Chain struct {
	scanners []Scanner
}

// NewChain creates a Chain. Scanners are tried in order.
func NewChain(scanners ...Scanner) *Chain {
	return &Chain{scanners: scanners}
}

func (c *Chain) Name() string { return "chain" }

// Scan tries each scanner in order and returns the first snapshot.
func (c *Chain) Scan(ctx context.Context, targetURL string) (*Snapshot, error) {
	var lastErr error
	for _, s := range c.scanners {
		snap, err := s.Scan(ctx, targetURL)
		if err == nil && snap != nil {
			return snap, nil
		}
		if err != nil {
			zap.L().Debug("pagescan: scanner failed, trying next",
				zap.String("scanner", s.Name()),
				zap.String("url", targetURL),
				zap.Error(err),
			)
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, eris.Wrap(lastErr, "pagescan: all scanners failed")
	}
	return nil, eris.Errorf("pagescan: no scanner configured for url: %s", targetURL)
}
