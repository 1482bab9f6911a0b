package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyppe-labs/scoriz/internal/pagescan"
	"github.com/hyppe-labs/scoriz/pkg/anthropic"
)

// fakeAI routes each request to a canned response based on prompt
// content, mirroring the four generation phases.
type fakeAI struct {
	mu        sync.Mutex
	general   string
	heuristic string
	journey   string
	profile   string
	err       error
	calls     []string
}

func (f *fakeAI) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	prompt := req.Messages[0].Content

	var phase, body string
	switch {
	case strings.Contains(prompt, "Nielsen"):
		phase, body = "heuristic", f.heuristic
	case strings.Contains(prompt, "user journey"):
		phase, body = "journey", f.journey
	case strings.Contains(prompt, "Profile the business"):
		phase, body = "profile", f.profile
	default:
		phase, body = "general", f.general
	}

	f.mu.Lock()
	f.calls = append(f.calls, phase)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: body}},
	}, nil
}

type fakeScanner struct {
	snap  *pagescan.Snapshot
	err   error
	calls int
}

func (f *fakeScanner) Name() string { return "fake" }
func (f *fakeScanner) Scan(_ context.Context, _ string) (*pagescan.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

func TestAnalyzeAllCallsFail(t *testing.T) {
	ai := &fakeAI{err: errors.New("api down")}
	a := NewAnalyzer(ai, nil, "test-model")

	got, err := a.Analyze(context.Background(), "https://acme.fr", "fr")

	require.NoError(t, err)
	assert.True(t, got.Degraded)
	want := DefaultResult()
	want.Degraded = true
	assert.Equal(t, want, got)
}

func TestAnalyzeGeneralOnly(t *testing.T) {
	ai := &fakeAI{
		general:   `{"uxScore": 91, "detailedScores": {"clarity": 95}}`,
		heuristic: "je ne peux pas répondre",
		journey:   "pas de JSON ici",
		profile:   "rien",
	}
	a := NewAnalyzer(ai, nil, "test-model")

	got, err := a.Analyze(context.Background(), "https://acme.fr", "fr")

	require.NoError(t, err)
	assert.False(t, got.Degraded)
	assert.Equal(t, float64(91), got.UXScore)
	assert.Equal(t, float64(95), got.DetailedScores.Clarity)
	// Failed sections fall back to defaults.
	def := DefaultResult()
	assert.Equal(t, def.DetailedScores.Navigation, got.DetailedScores.Navigation)
	assert.Equal(t, def.HeuristicAnalysis, got.HeuristicAnalysis)
	assert.Equal(t, def.UserJourney, got.UserJourney)
}

func TestAnalyzeFullPipeline(t *testing.T) {
	ai := &fakeAI{
		general: "```json\n" + `{"uxScore": 84}` + "\n```",
		heuristic: `{
			"heuristicScores": {"visibility": 8},
			"detailedAnalysis": [
				{"principle": "Visibilité de l'état du système", "score": 8, "status": "success",
				 "description": "ok", "details": "...", "recommendations": "..."},
				{"principle": "Aide et documentation", "score": 3, "status": "error",
				 "description": "faible", "details": "...", "recommendations": "..."}
			]
		}`,
		journey: `{
			"journeySteps": [
				{"stage": "Découverte", "touchpoint": "Accueil", "userGoal": "comprendre",
				 "userEmotion": "positive", "frictionPoints": [], "opportunities": []}
			],
			"criticalPoints": ["paiement"]
		}`,
		profile: `{"industry": "Boulangerie", "sector": "Artisanat", "businessType": "B2C"}`,
	}
	a := NewAnalyzer(ai, nil, "test-model")

	got, err := a.Analyze(context.Background(), "https://boulangerie-martin.fr", "fr")

	require.NoError(t, err)
	assert.False(t, got.Degraded)
	assert.Equal(t, float64(84), got.UXScore)

	require.Len(t, got.HeuristicAnalysis.Principles, 2)
	assert.Equal(t, 1, got.HeuristicAnalysis.Summary.Strengths)
	assert.Equal(t, 1, got.HeuristicAnalysis.Summary.CriticalIssues)

	require.Len(t, got.UserJourney.JourneySteps, 1)
	assert.Equal(t, "Découverte", got.UserJourney.JourneySteps[0].Stage)
	assert.Equal(t, []string{"paiement"}, got.UserJourney.CriticalPoints)

	// All four phases fired.
	assert.ElementsMatch(t, []string{"general", "heuristic", "journey", "profile"}, ai.calls)
}

func TestAnalyzeSnapshotSharedWithPrompts(t *testing.T) {
	ai := &fakeAI{}
	scanner := &fakeScanner{snap: &pagescan.Snapshot{
		Title:    "Acme",
		Headings: []string{"Bienvenue"},
	}}
	a := NewAnalyzer(ai, scanner, "test-model")

	_, err := a.Analyze(context.Background(), "https://acme.fr", "fr")

	require.NoError(t, err)
	assert.Equal(t, 1, scanner.calls)
}

func TestAnalyzeScannerFailureDegradesGracefully(t *testing.T) {
	ai := &fakeAI{general: `{"uxScore": 75}`}
	scanner := &fakeScanner{err: errors.New("chrome missing")}
	a := NewAnalyzer(ai, scanner, "test-model")

	got, err := a.Analyze(context.Background(), "https://acme.fr", "fr")

	require.NoError(t, err)
	assert.Equal(t, float64(75), got.UXScore)
	assert.False(t, got.Degraded)
}

func TestAnalyzeContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ai := &fakeAI{err: context.Canceled}
	a := NewAnalyzer(ai, nil, "test-model")

	_, err := a.Analyze(ctx, "https://acme.fr", "fr")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHeuristicResponseScoresOnly(t *testing.T) {
	resp := heuristicResponse{
		HeuristicScores: map[string]float64{
			"visibility": 8, "realWorldMatch": 6, "help": 3,
		},
	}

	got, err := resp.toModel()

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Principles, 3)
	// Catalog order is preserved.
	assert.Equal(t, "Visibilité de l'état du système", got.Principles[0].Principle)
	assert.Equal(t, "success", got.Principles[0].Status)
	assert.Equal(t, "warning", got.Principles[1].Status)
	assert.Equal(t, "error", got.Principles[2].Status)
	assert.Equal(t, 1, got.Summary.Strengths)
	assert.Equal(t, 1, got.Summary.Improvements)
	assert.Equal(t, 1, got.Summary.CriticalIssues)
}

func TestHeuristicResponseEmpty(t *testing.T) {
	got, err := heuristicResponse{}.toModel()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatusForScore(t *testing.T) {
	assert.Equal(t, "success", statusForScore(7))
	assert.Equal(t, "warning", statusForScore(5))
	assert.Equal(t, "warning", statusForScore(6.9))
	assert.Equal(t, "error", statusForScore(4.9))
}
