package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyppe-labs/scoriz/internal/model"
)

func TestReconcileAllNil(t *testing.T) {
	got := Reconcile(nil, nil, nil)
	assert.Equal(t, DefaultResult(), got)
}

func TestReconcileScalarOverride(t *testing.T) {
	general := map[string]any{"uxScore": float64(91)}

	got := Reconcile(general, nil, nil)

	assert.Equal(t, float64(91), got.UXScore)
	// Everything else keeps its default.
	want := DefaultResult()
	want.UXScore = 91
	assert.Equal(t, want, got)
}

func TestReconcilePartialNestedGroup(t *testing.T) {
	general := map[string]any{
		"detailedScores": map[string]any{
			"clarity":    float64(88),
			"navigation": float64(72),
		},
	}

	got := Reconcile(general, nil, nil)

	def := DefaultResult()
	assert.Equal(t, float64(88), got.DetailedScores.Clarity)
	assert.Equal(t, float64(72), got.DetailedScores.Navigation)
	assert.Equal(t, def.DetailedScores.Accessibility, got.DetailedScores.Accessibility)
	assert.Equal(t, def.DetailedScores.Performance, got.DetailedScores.Performance)
	assert.Equal(t, def.DetailedScores.MobileExperience, got.DetailedScores.MobileExperience)
}

func TestReconcileQuotedNumbers(t *testing.T) {
	general := map[string]any{
		"uxScore": "83",
		"marketAnalysis": map[string]any{
			"conversionRate": map[string]any{
				"estimated": "3.4%",
			},
		},
	}

	got := Reconcile(general, nil, nil)

	assert.Equal(t, float64(83), got.UXScore)
	assert.Equal(t, 3.4, got.MarketAnalysis.ConversionRate.Estimated)
	// Units untouched by a partial conversionRate object.
	assert.Equal(t, "%", got.MarketAnalysis.ConversionRate.EstimatedUnit)
}

func TestReconcileArraysReplaceWholesale(t *testing.T) {
	general := map[string]any{
		"recommendations": []any{
			map[string]any{
				"title":       "Réduire le temps de chargement",
				"description": "Compresser les images de la page d'accueil.",
				"impact":      "high",
			},
		},
	}

	got := Reconcile(general, nil, nil)

	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Réduire le temps de chargement", got.Recommendations[0].Title)
}

func TestReconcileEmptyArrayKeepsDefault(t *testing.T) {
	general := map[string]any{"recommendations": []any{}}

	got := Reconcile(general, nil, nil)

	assert.Equal(t, DefaultResult().Recommendations, got.Recommendations)
}

func TestReconcileNullIsNoOp(t *testing.T) {
	var general map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"uxScore": null,
		"recommendations": null,
		"valueProposition": {"current": null, "strength": "Catalogue riche"}
	}`), &general))

	got := Reconcile(general, nil, nil)

	def := DefaultResult()
	assert.Equal(t, def.UXScore, got.UXScore)
	assert.Equal(t, def.Recommendations, got.Recommendations)
	assert.Equal(t, def.ValueProposition.Current, got.ValueProposition.Current)
	assert.Equal(t, "Catalogue riche", got.ValueProposition.Strength)
}

func TestReconcileMarketDataFieldWise(t *testing.T) {
	general := map[string]any{
		"marketData": map[string]any{
			"industryOverview": map[string]any{
				"industryName": "E-commerce alimentaire",
				"marketSize":   float64(24.8),
			},
		},
	}

	got := Reconcile(general, nil, nil)

	def := DefaultResult()
	assert.Equal(t, "E-commerce alimentaire", got.MarketData.IndustryOverview.IndustryName)
	assert.Equal(t, 24.8, got.MarketData.IndustryOverview.MarketSize)
	assert.Equal(t, def.MarketData.IndustryOverview.MaturityStage, got.MarketData.IndustryOverview.MaturityStage)
	assert.Equal(t, def.MarketData.KeyPerformanceIndicators, got.MarketData.KeyPerformanceIndicators)
	assert.Equal(t, def.MarketData.Sources, got.MarketData.Sources)
}

func TestReconcileHeuristicWholesale(t *testing.T) {
	h := &model.HeuristicAnalysis{
		Summary: model.HeuristicSummary{Strengths: 1},
		Principles: []model.HeuristicPrinciple{
			{Principle: "Visibilité de l'état du système", Status: model.StatusSuccess, Score: 9},
		},
	}

	got := Reconcile(nil, h, nil)

	assert.Equal(t, *h, got.HeuristicAnalysis)
	require.Len(t, got.HeuristicAnalysis.Principles, 1)
}

func TestReconcileEmptyHeuristicKeepsDefault(t *testing.T) {
	got := Reconcile(nil, &model.HeuristicAnalysis{}, nil)
	assert.Equal(t, DefaultResult().HeuristicAnalysis, got.HeuristicAnalysis)
}

func TestReconcileJourneyWholesale(t *testing.T) {
	j := &model.UserJourney{
		JourneySteps: []model.JourneyStep{
			{Stage: "Découverte", Touchpoint: "Publicité", UserEmotion: model.EmotionPositive},
		},
		CriticalPoints: []string{"Paiement en trois écrans"},
	}

	got := Reconcile(nil, nil, j)

	assert.Equal(t, *j, got.UserJourney)
}

func TestReconcileIgnoresVolunteeredGroups(t *testing.T) {
	// The general call sometimes returns heuristic or journey blocks
	// despite the prompt; the dedicated calls own those groups.
	general := map[string]any{
		"uxScore":           float64(80),
		"heuristicAnalysis": map[string]any{"summary": map[string]any{"strengths": float64(99)}},
		"userJourney":       map[string]any{"criticalPoints": []any{"bruit"}},
	}

	got := Reconcile(general, nil, nil)

	def := DefaultResult()
	assert.Equal(t, def.HeuristicAnalysis, got.HeuristicAnalysis)
	assert.Equal(t, def.UserJourney, got.UserJourney)
}

func TestReconcileMalformedGroupKeepsDefault(t *testing.T) {
	general := map[string]any{
		"recommendations": "pas un tableau",
		"uxScore":         float64(77),
	}

	got := Reconcile(general, nil, nil)

	assert.Equal(t, float64(77), got.UXScore)
	assert.Equal(t, DefaultResult().Recommendations, got.Recommendations)
}

func TestDefaultResultIsComplete(t *testing.T) {
	def := DefaultResult()

	assert.NotZero(t, def.UXScore)
	assert.NotEmpty(t, def.Recommendations)
	assert.Len(t, def.HeuristicAnalysis.Principles, 10)
	assert.NotEmpty(t, def.UserJourney.JourneySteps)
	assert.NotEmpty(t, def.MarketData.KeyPerformanceIndicators)
	assert.NotEmpty(t, def.MarketData.Sources)
	assert.False(t, def.Degraded)
}

func TestDefaultResultIsolated(t *testing.T) {
	// Callers mutate their copy; the next call must start clean.
	a := DefaultResult()
	a.Recommendations[0].Title = "modifié"
	a.HeuristicAnalysis.Principles[0].Score = 0

	b := DefaultResult()
	assert.NotEqual(t, "modifié", b.Recommendations[0].Title)
	assert.NotZero(t, b.HeuristicAnalysis.Principles[0].Score)
}
