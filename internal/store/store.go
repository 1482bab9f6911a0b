// Package store persists saved analyses and the daily usage ledger.
// Two drivers are provided: SQLite for single-node deployments and
// Postgres for shared ones.
package store

import (
	"context"

	"github.com/hyppe-labs/scoriz/internal/model"
)

// MaxSavedAnalyses bounds the saved-analysis list. Saving the
// (n+1)-th analysis evicts the oldest.
const MaxSavedAnalyses = 10

// Store defines the persistence interface.
type Store interface {
	// Saved analyses
	SaveAnalysis(ctx context.Context, a model.SavedAnalysis) error
	ListAnalyses(ctx context.Context) ([]model.SavedAnalysis, error)
	DeleteAnalysis(ctx context.Context, id string) error

	// Usage ledger
	GetUsage(ctx context.Context) (model.Usage, error)
	PutUsage(ctx context.Context, u model.Usage) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
