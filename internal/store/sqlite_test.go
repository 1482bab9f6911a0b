package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyppe-labs/scoriz/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "scoriz_test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleAnalysis(id string, date time.Time) model.SavedAnalysis {
	return model.SavedAnalysis{
		ID:   id,
		URL:  "https://acme.fr",
		Date: date,
		Result: model.AnalysisResult{
			UXScore: 82,
			DetailedScores: model.DetailedScores{
				Clarity: 90, Navigation: 85, Accessibility: 70,
				Performance: 80, MobileExperience: 75,
			},
		},
	}
}

func TestSQLite_SaveAndList(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.SaveAnalysis(ctx, sampleAnalysis("a-1", now)))

	got, err := st.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a-1", got[0].ID)
	assert.Equal(t, "https://acme.fr", got[0].URL)
	assert.Equal(t, float64(82), got[0].Result.UXScore)
	assert.Equal(t, float64(90), got[0].Result.DetailedScores.Clarity)
}

func TestSQLite_ListMostRecentFirst(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.SaveAnalysis(ctx, sampleAnalysis("old", base.Add(-2*time.Hour))))
	require.NoError(t, st.SaveAnalysis(ctx, sampleAnalysis("new", base)))
	require.NoError(t, st.SaveAnalysis(ctx, sampleAnalysis("mid", base.Add(-1*time.Hour))))

	got, err := st.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "old", got[2].ID)
}

func TestSQLite_SaveEvictsOldest(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	for i := 0; i < MaxSavedAnalyses+1; i++ {
		a := sampleAnalysis(fmt.Sprintf("a-%02d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, st.SaveAnalysis(ctx, a))
	}

	got, err := st.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, got, MaxSavedAnalyses)
	// The oldest entry is gone; the newest survives at the head.
	assert.Equal(t, "a-10", got[0].ID)
	for _, a := range got {
		assert.NotEqual(t, "a-00", a.ID)
	}
}

func TestSQLite_DeleteAnalysis(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, st.SaveAnalysis(ctx, sampleAnalysis("a-1", now)))
	require.NoError(t, st.DeleteAnalysis(ctx, "a-1"))

	got, err := st.ListAnalyses(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_DeleteUnknownIDIsNoOp(t *testing.T) {
	st := newTestSQLiteStore(t)
	assert.NoError(t, st.DeleteAnalysis(context.Background(), "missing"))
}

func TestSQLite_UsageRoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	// Empty ledger reads as zero usage.
	got, err := st.GetUsage(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.Count)
	assert.True(t, got.LastReset.IsZero())

	reset := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	require.NoError(t, st.PutUsage(ctx, model.Usage{Count: 2, LastReset: reset}))

	got, err = st.GetUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
	assert.True(t, got.LastReset.Equal(reset))

	// Upsert overwrites the single row.
	require.NoError(t, st.PutUsage(ctx, model.Usage{Count: 3, LastReset: reset}))
	got, err = st.GetUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
}
