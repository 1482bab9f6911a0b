// Package analysis orchestrates the three-way generation of a site
// report and reconciles the partial results into a complete one.
package analysis

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyppe-labs/scoriz/internal/extract"
	"github.com/hyppe-labs/scoriz/internal/model"
	"github.com/hyppe-labs/scoriz/internal/pagescan"
	"github.com/hyppe-labs/scoriz/pkg/anthropic"
)

const defaultMaxTokens = 4096

// Analyzer runs the generation pipeline for one URL.
type Analyzer struct {
	ai        anthropic.Client
	scanner   pagescan.Scanner
	model     string
	maxTokens int64
}

// AnalyzerOption customizes an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithMaxTokens overrides the per-call output token cap.
func WithMaxTokens(n int64) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// NewAnalyzer creates an Analyzer. scanner may be nil, in which case
// prompts are built from the URL alone.
func NewAnalyzer(ai anthropic.Client, scanner pagescan.Scanner, modelID string, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		ai:        ai,
		scanner:   scanner,
		model:     modelID,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces a complete report for the URL. The three generation
// calls run concurrently; a failed call degrades its section to the
// defaults instead of failing the analysis. The only error returned is
// context cancellation.
func (a *Analyzer) Analyze(ctx context.Context, targetURL, lang string) (model.AnalysisResult, error) {
	runID := uuid.NewString()
	log := zap.L().With(
		zap.String("run_id", runID),
		zap.String("url", targetURL),
		zap.String("lang", lang),
	)
	log.Info("analysis started")

	snap := a.snapshot(ctx, targetURL, log)

	var (
		general   map[string]any
		heuristic *model.HeuristicAnalysis
		journey   *model.UserJourney
	)

	g, gCtx := errgroup.WithContext(ctx)

	// Don't fail the group on individual errors: a lost section falls
	// back to the default template.
	g.Go(func() error {
		raw, err := a.generate(gCtx, generalPrompt(targetURL, lang), "general")
		if err != nil {
			log.Warn("general analysis failed", zap.Error(err))
			return nil
		}
		m, err := extract.JSON(raw)
		if err != nil {
			log.Warn("general analysis returned no JSON", zap.Error(err))
			return nil
		}
		general = m
		return nil
	})

	g.Go(func() error {
		prompt, err := heuristicPrompt(targetURL, lang, snap)
		if err != nil {
			log.Warn("heuristic prompt build failed", zap.Error(err))
			return nil
		}
		raw, err := a.generate(gCtx, prompt, "heuristic")
		if err != nil {
			log.Warn("heuristic analysis failed", zap.Error(err))
			return nil
		}
		var resp heuristicResponse
		if err := extract.Into(raw, &resp); err != nil {
			log.Warn("heuristic analysis returned no JSON", zap.Error(err))
			return nil
		}
		heuristic, err = resp.toModel()
		if err != nil {
			log.Warn("heuristic conversion failed", zap.Error(err))
		}
		return nil
	})

	g.Go(func() error {
		profile := a.profile(gCtx, targetURL, lang, log)
		raw, err := a.generate(gCtx, journeyPrompt(targetURL, lang, profile, snap), "journey")
		if err != nil {
			log.Warn("journey analysis failed", zap.Error(err))
			return nil
		}
		var j model.UserJourney
		if err := extract.Into(raw, &j); err != nil {
			log.Warn("journey analysis returned no JSON", zap.Error(err))
			return nil
		}
		journey = &j
		return nil
	})

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return model.AnalysisResult{}, err
	}

	result := Reconcile(general, heuristic, journey)
	if general == nil {
		result.Degraded = true
	}

	log.Info("analysis complete",
		zap.Float64("ux_score", result.UXScore),
		zap.Bool("degraded", result.Degraded),
	)
	return result, nil
}

// snapshot captures the page structure once; both the heuristic and
// journey prompts share it. Failure is logged and the analysis goes on
// without page context.
func (a *Analyzer) snapshot(ctx context.Context, targetURL string, log *zap.Logger) *pagescan.Snapshot {
	if a.scanner == nil {
		return nil
	}
	snap, err := a.scanner.Scan(ctx, targetURL)
	if err != nil {
		log.Warn("page scan failed, analysing without page context", zap.Error(err))
		return nil
	}
	log.Debug("page scan complete",
		zap.Int("headings", len(snap.Headings)),
		zap.Int("nav_links", len(snap.NavLinks)),
		zap.Int("ctas", len(snap.CTAs)),
	)
	return snap
}

// profile generates the lightweight site profile that grounds the
// journey prompt. Optional: nil on any failure.
func (a *Analyzer) profile(ctx context.Context, targetURL, lang string, log *zap.Logger) *model.SiteProfile {
	raw, err := a.generate(ctx, profilePrompt(targetURL, lang), "profile")
	if err != nil {
		log.Warn("site profile failed", zap.Error(err))
		return nil
	}
	var p model.SiteProfile
	if err := extract.Into(raw, &p); err != nil {
		log.Warn("site profile returned no JSON", zap.Error(err))
		return nil
	}
	return &p
}

func (a *Analyzer) generate(ctx context.Context, prompt, phase string) (string, error) {
	resp, err := a.ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	resp.Usage.LogCost(a.model, phase)
	return resp.Text(), nil
}

// heuristicResponse is the wire shape of the heuristic generation call.
type heuristicResponse struct {
	HeuristicScores  map[string]float64         `json:"heuristicScores"`
	DetailedAnalysis []model.HeuristicPrinciple `json:"detailedAnalysis"`
}

// toModel converts the response. When the model returned scores but no
// detailed analysis, principle entries are synthesised from the
// catalog so the section is still rendered per principle. A response
// with neither yields nil and the defaults apply.
func (r heuristicResponse) toModel() (*model.HeuristicAnalysis, error) {
	principles := r.DetailedAnalysis
	if len(principles) == 0 {
		if len(r.HeuristicScores) == 0 {
			return nil, nil
		}
		catalog, err := Principles()
		if err != nil {
			return nil, err
		}
		for _, p := range catalog {
			score, ok := r.HeuristicScores[p.Key]
			if !ok {
				continue
			}
			principles = append(principles, model.HeuristicPrinciple{
				Principle: p.Name,
				Status:    statusForScore(score),
				Score:     score,
			})
		}
		if len(principles) == 0 {
			return nil, nil
		}
	}

	out := &model.HeuristicAnalysis{Principles: principles}
	for i, p := range principles {
		if p.Status == "" {
			p.Status = statusForScore(p.Score)
			principles[i] = p
		}
		switch p.Status {
		case model.StatusSuccess:
			out.Summary.Strengths++
		case model.StatusWarning:
			out.Summary.Improvements++
		default:
			out.Summary.CriticalIssues++
		}
	}
	return out, nil
}

// statusForScore maps a 0-10 principle score onto a severity.
func statusForScore(score float64) string {
	switch {
	case score >= 7:
		return model.StatusSuccess
	case score >= 5:
		return model.StatusWarning
	default:
		return model.StatusError
	}
}
