package analysis

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hyppe-labs/scoriz/internal/model"
)

// Reconcile folds the three generation results over the default report.
// The general payload merges group by group so a partial answer only
// overrides the groups it actually carries. The heuristic and journey
// results each replace their group wholesale when present. Nil inputs
// leave the corresponding defaults in place, so the output is always a
// complete report.
func Reconcile(general map[string]any, heuristic *model.HeuristicAnalysis, journey *model.UserJourney) model.AnalysisResult {
	out := DefaultResult()
	if len(general) > 0 {
		mergeGeneral(&out, prune(general))
	}
	if heuristic != nil && len(heuristic.Principles) > 0 {
		out.HeuristicAnalysis = *heuristic
	}
	if journey != nil && len(journey.JourneySteps) > 0 {
		out.UserJourney = *journey
	}
	return out
}

// mergeGeneral applies the general/market payload. The heuristic and
// journey groups are owned by their dedicated calls and are ignored
// here even if the model volunteered them.
func mergeGeneral(out *model.AnalysisResult, m map[string]any) {
	if v, ok := num(m["uxScore"]); ok {
		out.UXScore = v
	}
	if ds, ok := m["detailedScores"].(map[string]any); ok {
		mergeDetailedScores(&out.DetailedScores, ds)
	}
	var recs []model.Recommendation
	if decodeInto(m["recommendations"], &recs) && len(recs) > 0 {
		out.Recommendations = recs
	}
	decodeInto(m["valueProposition"], &out.ValueProposition)
	if ma, ok := m["marketAnalysis"].(map[string]any); ok {
		mergeMarketAnalysis(&out.MarketAnalysis, ma)
	}
	decodeInto(m["marketData"], &out.MarketData)
}

func mergeDetailedScores(ds *model.DetailedScores, m map[string]any) {
	set := func(dst *float64, key string) {
		if v, ok := num(m[key]); ok {
			*dst = v
		}
	}
	set(&ds.Clarity, "clarity")
	set(&ds.Navigation, "navigation")
	set(&ds.Accessibility, "accessibility")
	set(&ds.Performance, "performance")
	set(&ds.MobileExperience, "mobileExperience")
}

func mergeMarketAnalysis(ma *model.MarketAnalysis, m map[string]any) {
	if s, ok := m["positioning"].(string); ok && s != "" {
		ma.Positioning = s
	}
	var names []string
	if decodeInto(m["competitors"], &names) && len(names) > 0 {
		ma.Competitors = names
	}
	var details []model.CompetitorDetail
	if decodeInto(m["competitorDetails"], &details) && len(details) > 0 {
		ma.CompetitorDetails = details
	}
	var trends []model.MarketTrend
	if decodeInto(m["trends"], &trends) && len(trends) > 0 {
		ma.Trends = trends
	}
	if cr, ok := m["conversionRate"].(map[string]any); ok {
		mergeConversionRate(&ma.ConversionRate, cr)
	}
}

func mergeConversionRate(cr *model.ConversionRate, m map[string]any) {
	setNum := func(dst *float64, key string) {
		if v, ok := num(m[key]); ok {
			*dst = v
		}
	}
	setStr := func(dst *string, key string) {
		if s, ok := m[key].(string); ok && s != "" {
			*dst = s
		}
	}
	setNum(&cr.Estimated, "estimated")
	setStr(&cr.EstimatedUnit, "estimatedUnit")
	setNum(&cr.IndustryAverage, "industryAverage")
	setStr(&cr.IndustryAverageUnit, "industryAverageUnit")
	setNum(&cr.Potential, "potential")
	setStr(&cr.PotentialUnit, "potentialUnit")
	setNum(&cr.CompetitorAverage, "competitorAverage")
	setStr(&cr.CompetitorAverageUnit, "competitorAverageUnit")
	setNum(&cr.TopPerformerRate, "topPerformerRate")
	setStr(&cr.TopPerformerRateUnit, "topPerformerRateUnit")
	setStr(&cr.Source, "source")
}

// num coerces a JSON value to a float. Numbers arrive as float64, but
// models occasionally quote them or append a percent sign.
func num(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(n), "%"), 64)
		return f, err == nil
	}
	return 0, false
}

// decodeInto re-encodes a generic JSON value and decodes it onto dst,
// which already holds defaults. Struct fields absent from v keep their
// defaults; fields present overwrite them, slices wholesale.
func decodeInto(v, dst any) bool {
	if v == nil {
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// prune drops null members recursively so a model emitting
// "field": null cannot erase a default.
func prune(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case nil:
		case map[string]any:
			out[k] = prune(val)
		case []any:
			kept := make([]any, 0, len(val))
			for _, item := range val {
				if inner, ok := item.(map[string]any); ok {
					kept = append(kept, prune(inner))
				} else if item != nil {
					kept = append(kept, item)
				}
			}
			out[k] = kept
		default:
			out[k] = v
		}
	}
	return out
}
