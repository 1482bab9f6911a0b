package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/hyppe-labs/scoriz/internal/model"
)

func sampleSaved() model.SavedAnalysis {
	return model.SavedAnalysis{
		ID:   "a-1",
		URL:  "https://acme.fr",
		Date: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		Result: model.AnalysisResult{
			UXScore: 82,
			DetailedScores: model.DetailedScores{
				Clarity: 90, Navigation: 85, Accessibility: 70,
				Performance: 80, MobileExperience: 75,
			},
			Recommendations: []model.Recommendation{
				{Title: "Simplifier le menu", Description: "Réduire à 5 entrées", Impact: model.ImpactHigh},
			},
			HeuristicAnalysis: model.HeuristicAnalysis{
				Summary: model.HeuristicSummary{Strengths: 1},
				Principles: []model.HeuristicPrinciple{
					{Principle: "Cohérence et standards", Status: model.StatusSuccess, Score: 8.5},
				},
			},
			MarketData: model.MarketData{
				KeyPerformanceIndicators: []model.KPICategory{
					{Category: "Marketing", Metrics: []model.KPIMetric{
						{Name: "CAC", Value: 1250, Unit: "€", Benchmark: 1100, TopPerformerValue: 875, Source: "test"},
					}},
				},
			},
			UserJourney: model.UserJourney{
				JourneySteps: []model.JourneyStep{
					{
						Stage: "Découverte", Touchpoint: "Accueil", UserGoal: "comprendre",
						UserEmotion:    model.EmotionNeutral,
						FrictionPoints: []string{"message flou", "trop dense"},
					},
				},
				CriticalPoints: []string{"paiement"},
			},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleSaved()))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	for _, name := range []string{"Scores", "Recommandations", "Heuristiques", "KPIs", "Parcours"} {
		_, ok := f.Sheet[name]
		assert.True(t, ok, "missing sheet %s", name)
	}

	scores := f.Sheet["Scores"]
	assert.Equal(t, "URL", scores.Rows[0].Cells[0].String())
	assert.Equal(t, "https://acme.fr", scores.Rows[0].Cells[1].String())
	assert.Equal(t, "82", scores.Rows[2].Cells[1].String())

	recs := f.Sheet["Recommandations"]
	require.Len(t, recs.Rows, 2)
	assert.Equal(t, "Simplifier le menu", recs.Rows[1].Cells[0].String())
	assert.Equal(t, "high", recs.Rows[1].Cells[2].String())

	kpis := f.Sheet["KPIs"]
	require.Len(t, kpis.Rows, 2)
	assert.Equal(t, "Marketing", kpis.Rows[1].Cells[0].String())
	assert.Equal(t, "1250", kpis.Rows[1].Cells[2].String())
}

func TestWriteXLSXJourneyFrictions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleSaved()))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	journey := f.Sheet["Parcours"]
	assert.Equal(t, "Découverte", journey.Rows[1].Cells[0].String())
	assert.Equal(t, "message flou\ntrop dense", journey.Rows[1].Cells[4].String())
	// Critical points trail the step table.
	last := journey.Rows[len(journey.Rows)-1]
	assert.Equal(t, "paiement", last.Cells[0].String())
}

func TestWriteXLSXDefaultTemplate(t *testing.T) {
	// The default template exports without error and carries the full
	// principle set.
	saved := sampleSaved()
	saved.Result.HeuristicAnalysis.Principles = make([]model.HeuristicPrinciple, 10)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, saved))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	// 3 summary rows + blank + header + 10 principles.
	assert.Len(t, f.Sheet["Heuristiques"].Rows, 15)
}
