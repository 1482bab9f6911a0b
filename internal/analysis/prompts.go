package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyppe-labs/scoriz/internal/model"
	"github.com/hyppe-labs/scoriz/internal/pagescan"
)

// maxSnapshotHTML bounds the raw markup injected into a prompt.
const maxSnapshotHTML = 10000

func languageDirective(lang string) string {
	if lang == "en" {
		return "Write every textual value in English."
	}
	return "Write every textual value in French."
}

// generalPrompt requests the market-wide report: UX score, detailed
// scores, recommendations, value proposition, market analysis and the
// extended market data block.
func generalPrompt(url, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a senior UX and market analyst. Analyse the landing page at %s to optimise user experience and conversion.\n\n", url)
	b.WriteString(languageDirective(lang))
	b.WriteString(`

Provide:
- a UX score from 0 to 100
- detailed scores for clarity, navigation, accessibility, performance and mobile experience
- three concrete, actionable recommendations
- an assessment of the value proposition
- an estimate of the market positioning

For market data, be precise and sector-relevant:
- every metric MUST carry an explicit unit (%, EUR, days, ...)
- figures must be realistic and consistent with the site's industry
- cover marketing metrics (CAC, LTV, conversion rate), product metrics (retention, NPS, feature adoption) and executive metrics (market share, sector growth, gross margin)
- give a sector benchmark and a top-performer value for each metric
- cite a credible, recent source for each figure
- include market trends with quantified one-to-three-year forecasts
- quantify the competition (market share, growth)

IMPORTANT: respond with ONLY a valid JSON object with this exact structure, no extra text, no introduction:
`)
	b.WriteString(generalSchema)
	b.WriteString("\nDo not start your answer with prose. Return ONLY the JSON object.")
	return b.String()
}

// heuristicPrompt requests an evaluation against Nielsen's ten
// usability principles. When a page snapshot is available its UI
// inventory and markup ground the evaluation; otherwise the model
// works from the URL alone.
func heuristicPrompt(url, lang string, snap *pagescan.Snapshot) (string, error) {
	catalog, err := Principles()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a UX expert specialised in Nielsen's usability heuristics. Evaluate the page at %s against the ten principles.\n\n", url)
	b.WriteString(languageDirective(lang))
	b.WriteString("\n\n")
	if snap != nil {
		b.WriteString("Detected UI elements:\n")
		b.WriteString(snapshotInventory(snap))
		b.WriteString("\n\nHTML (partial):\n")
		b.WriteString(truncate(snap.HTML, maxSnapshotHTML))
		b.WriteString("\n\n")
	}
	b.WriteString("Evaluate each of the ten principles:\n")
	for i, p := range catalog {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, p.Name, p.Hint)
	}
	b.WriteString("\nIMPORTANT: respond with ONLY a valid JSON object with this exact structure, no extra text:\n")
	b.WriteString(heuristicSchema)
	b.WriteString("\nDo not start your answer with prose. Return ONLY the JSON object.")
	return b.String(), nil
}

// journeyPrompt requests a stage-by-stage walk of the visitor funnel.
// The site profile supplies industry context and the snapshot supplies
// the observed navigation, CTAs and form fields.
func journeyPrompt(url, lang string, profile *model.SiteProfile, snap *pagescan.Snapshot) string {
	industry := "unknown"
	if profile != nil && profile.Industry != "" {
		industry = profile.Industry
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a UX expert specialised in user journey analysis. Map the typical user journey for the site at %s.\n\nIndustry: %s\n\n", url, industry)
	b.WriteString(languageDirective(lang))
	b.WriteString("\n\n")
	if snap != nil {
		b.WriteString("Site structure (observed):\n")
		b.WriteString(snapshotInventory(snap))
		b.WriteString("\n\n")
	}
	b.WriteString(`Consider these journey stages:
1. Discovery (landing on the home page)
2. Consideration (exploring products or services)
3. Decision (weighing options, pricing)
4. Action (signup, purchase, contact)
5. Retention (onboarding, continued use)

For each stage identify the main touchpoint, the user's goal, likely friction points, improvement opportunities and the user's probable emotion (positive, neutral, negative).

IMPORTANT: respond with ONLY a valid JSON object with this exact structure, no extra text:
`)
	b.WriteString(journeySchema)
	b.WriteString("\nDo not start your answer with prose. Return ONLY the JSON object.")
	return b.String()
}

// profilePrompt requests the lightweight industry profile generated
// before the journey analysis.
func profilePrompt(url, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a web analyst. Profile the business behind the site at %s: its industry, sector, business type and key traits.\n\n", url)
	b.WriteString(languageDirective(lang))
	b.WriteString("\n\nIMPORTANT: respond with ONLY a valid JSON object with this exact structure, no extra text:\n")
	b.WriteString(profileSchema)
	b.WriteString("\nDo not start your answer with prose. Return ONLY the JSON object.")
	return b.String()
}

// snapshotInventory serialises the snapshot's UI element summary,
// leaving the raw HTML out.
func snapshotInventory(snap *pagescan.Snapshot) string {
	inv := map[string]any{
		"pageTitle":  snap.Title,
		"headings":   snap.Headings,
		"buttons":    snap.Buttons,
		"navigation": snap.NavLinks,
		"mainCTAs":   snap.CTAs,
		"formFields": snap.FormFields,
		"forms":      snap.Forms,
		"images":     snap.Images,
	}
	raw, err := json.Marshal(inv)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

const generalSchema = `{
  "uxScore": number,
  "detailedScores": {
    "clarity": number,
    "navigation": number,
    "accessibility": number,
    "performance": number,
    "mobileExperience": number
  },
  "recommendations": [
    {"title": "short title", "description": "detailed explanation", "impact": "high|medium|low"}
  ],
  "valueProposition": {
    "current": "...", "strength": "...", "weakness": "...",
    "improvement": "...", "competitorComparison": "..."
  },
  "marketAnalysis": {
    "positioning": "...",
    "competitors": ["...", "...", "..."],
    "competitorDetails": [
      {"name": "...", "url": "...", "strengths": "...", "weaknesses": "...",
       "marketShare": number, "marketShareUnit": "%",
       "annualRevenue": number, "annualRevenueUnit": "millions EUR",
       "growthRate": number, "growthRateUnit": "%",
       "keyDifferentiators": ["...", "..."]}
    ],
    "trends": [
      {"name": "...", "description": "...", "impact": "high|medium|low",
       "timeframe": "...", "adoptionRate": number, "adoptionRateUnit": "%", "source": "..."}
    ],
    "conversionRate": {
      "estimated": number, "estimatedUnit": "%",
      "industryAverage": number, "industryAverageUnit": "%",
      "potential": number, "potentialUnit": "%",
      "competitorAverage": number, "competitorAverageUnit": "%",
      "topPerformerRate": number, "topPerformerRateUnit": "%",
      "source": "..."
    }
  },
  "marketData": {
    "industryOverview": {
      "industryName": "...", "marketSize": number, "marketSizeUnit": "...",
      "annualGrowthRate": number, "annualGrowthRateUnit": "%",
      "totalAddressableMarket": number, "totalAddressableMarketUnit": "...",
      "maturityStage": "...", "source": "..."
    },
    "keyPerformanceIndicators": [
      {"category": "Marketing|Produit|Financier", "metrics": [
        {"name": "...", "value": number, "unit": "...",
         "benchmark": number, "benchmarkUnit": "...",
         "topPerformerValue": number, "topPerformerUnit": "...",
         "description": "...", "source": "..."}
      ]}
    ],
    "customerInsights": {
      "segments": [
        {"name": "...", "size": number, "sizeUnit": "%",
         "averageRevenue": number, "averageRevenueUnit": "...",
         "acquisitionCost": number, "acquisitionCostUnit": "...",
         "retentionRate": number, "retentionRateUnit": "%",
         "lifetimeValue": number, "lifetimeValueUnit": "..."}
      ],
      "customerJourney": {
        "averageConversionTime": number, "averageConversionTimeUnit": "...",
        "touchpointsBeforeConversion": number,
        "abandonmentRate": number, "abandonmentRateUnit": "%",
        "mostEffectiveChannel": "...",
        "channelEffectivenessRate": number, "channelEffectivenessRateUnit": "%"
      }
    },
    "competitiveLandscape": {
      "marketConcentration": number, "marketConcentrationUnit": "%",
      "topPlayersMarketShare": number, "topPlayersMarketShareUnit": "%",
      "entryBarriers": ["..."], "disruptiveThreats": ["..."],
      "consolidationTrend": "..."
    },
    "futureForecast": {
      "shortTerm": {"timeframe": "...", "projectedGrowth": number, "projectedGrowthUnit": "%",
                    "emergingOpportunities": ["..."], "potentialThreats": ["..."]},
      "mediumTerm": {"timeframe": "...", "projectedGrowth": number, "projectedGrowthUnit": "%",
                     "emergingOpportunities": ["..."], "potentialThreats": ["..."]}
    },
    "sources": [
      {"name": "...", "type": "...", "publisher": "...", "year": number,
       "credibilityScore": number, "credibilityScoreUnit": "/10", "url": "..."}
    ]
  }
}`

const heuristicSchema = `{
  "heuristicScores": {
    "visibility": number, "realWorldMatch": number, "userControl": number,
    "consistency": number, "errorPrevention": number, "recognition": number,
    "flexibility": number, "aesthetics": number, "errorRecovery": number,
    "help": number
  },
  "detailedAnalysis": [
    {"principle": "principle name", "score": number, "status": "success|warning|error",
     "description": "short description", "details": "detailed analysis",
     "recommendations": "improvement recommendations"}
  ]
}`

const journeySchema = `{
  "journeySteps": [
    {"stage": "stage name", "touchpoint": "main touchpoint",
     "userGoal": "the user's goal", "userEmotion": "positive|neutral|negative",
     "frictionPoints": ["...", "..."], "opportunities": ["...", "..."]}
  ],
  "criticalPoints": ["...", "..."]
}`

const profileSchema = `{
  "industry": "main industry", "sector": "business sector",
  "businessType": "B2B|B2C|B2B2C", "estimatedSize": "Startup|PME|Grande entreprise",
  "targetAudience": "...", "likelyGoals": ["...", "..."],
  "potentialChallenges": ["...", "..."], "keyFeatures": ["...", "..."]
}`
