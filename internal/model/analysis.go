// Package model defines the analysis result schema shared by the
// generation pipeline, the stores, and the HTTP layer.
package model

// Impact levels used by recommendations and market trends.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Statuses for heuristic principle evaluations.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// User emotions for journey steps.
const (
	EmotionPositive = "positive"
	EmotionNeutral  = "neutral"
	EmotionNegative = "negative"
)

// AnalysisResult is the canonical shape consumed by the presentation
// layer. After reconciliation every field is populated; the dashboard
// dereferences all of them without nil checks.
type AnalysisResult struct {
	UXScore           float64           `json:"uxScore"`
	DetailedScores    DetailedScores    `json:"detailedScores"`
	Recommendations   []Recommendation  `json:"recommendations"`
	ValueProposition  ValueProposition  `json:"valueProposition"`
	MarketAnalysis    MarketAnalysis    `json:"marketAnalysis"`
	MarketData        MarketData        `json:"marketData"`
	HeuristicAnalysis HeuristicAnalysis `json:"heuristicAnalysis"`
	UserJourney       UserJourney       `json:"userJourney"`

	// Degraded signals that the general analysis fell back to
	// demonstration data. The UI shows an advisory but still renders
	// the full report.
	Degraded bool `json:"degraded,omitempty"`
}

// DetailedScores holds the named sub-scores, each 0-100.
type DetailedScores struct {
	Clarity          float64 `json:"clarity"`
	Navigation       float64 `json:"navigation"`
	Accessibility    float64 `json:"accessibility"`
	Performance      float64 `json:"performance"`
	MobileExperience float64 `json:"mobileExperience"`
}

// Recommendation is one actionable improvement.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // high | medium | low
}

// ValueProposition captures the value-proposition assessment.
type ValueProposition struct {
	Current              string `json:"current"`
	Strength             string `json:"strength"`
	Weakness             string `json:"weakness"`
	Improvement          string `json:"improvement"`
	CompetitorComparison string `json:"competitorComparison"`
}

// MarketAnalysis holds positioning and competitor intelligence.
type MarketAnalysis struct {
	Positioning       string             `json:"positioning"`
	Competitors       []string           `json:"competitors"`
	CompetitorDetails []CompetitorDetail `json:"competitorDetails"`
	Trends            []MarketTrend      `json:"trends"`
	ConversionRate    ConversionRate     `json:"conversionRate"`
}

// CompetitorDetail is a quantified record for a single competitor.
type CompetitorDetail struct {
	Name               string   `json:"name"`
	URL                string   `json:"url"`
	Strengths          string   `json:"strengths"`
	Weaknesses         string   `json:"weaknesses"`
	MarketShare        float64  `json:"marketShare"`
	MarketShareUnit    string   `json:"marketShareUnit"`
	AnnualRevenue      float64  `json:"annualRevenue"`
	AnnualRevenueUnit  string   `json:"annualRevenueUnit"`
	GrowthRate         float64  `json:"growthRate"`
	GrowthRateUnit     string   `json:"growthRateUnit"`
	KeyDifferentiators []string `json:"keyDifferentiators"`
}

// MarketTrend is a named market movement with adoption figures.
type MarketTrend struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Impact           string  `json:"impact"`
	Timeframe        string  `json:"timeframe"`
	AdoptionRate     float64 `json:"adoptionRate"`
	AdoptionRateUnit string  `json:"adoptionRateUnit"`
	Source           string  `json:"source"`
}

// ConversionRate compares the site's estimated conversion against
// industry references. Every number carries its own unit.
type ConversionRate struct {
	Estimated             float64 `json:"estimated"`
	EstimatedUnit         string  `json:"estimatedUnit"`
	IndustryAverage       float64 `json:"industryAverage"`
	IndustryAverageUnit   string  `json:"industryAverageUnit"`
	Potential             float64 `json:"potential"`
	PotentialUnit         string  `json:"potentialUnit"`
	CompetitorAverage     float64 `json:"competitorAverage"`
	CompetitorAverageUnit string  `json:"competitorAverageUnit"`
	TopPerformerRate      float64 `json:"topPerformerRate"`
	TopPerformerRateUnit  string  `json:"topPerformerRateUnit"`
	Source                string  `json:"source"`
}

// MarketData is the extended market record rendered on the market tab.
type MarketData struct {
	IndustryOverview         IndustryOverview     `json:"industryOverview"`
	KeyPerformanceIndicators []KPICategory        `json:"keyPerformanceIndicators"`
	CustomerInsights         CustomerInsights     `json:"customerInsights"`
	CompetitiveLandscape     CompetitiveLandscape `json:"competitiveLandscape"`
	FutureForecast           FutureForecast       `json:"futureForecast"`
	Sources                  []DataSource         `json:"sources"`
}

// IndustryOverview summarizes the sector the site operates in.
type IndustryOverview struct {
	IndustryName               string  `json:"industryName"`
	MarketSize                 float64 `json:"marketSize"`
	MarketSizeUnit             string  `json:"marketSizeUnit"`
	AnnualGrowthRate           float64 `json:"annualGrowthRate"`
	AnnualGrowthRateUnit       string  `json:"annualGrowthRateUnit"`
	TotalAddressableMarket     float64 `json:"totalAddressableMarket"`
	TotalAddressableMarketUnit string  `json:"totalAddressableMarketUnit"`
	MaturityStage              string  `json:"maturityStage"`
	Source                     string  `json:"source"`
}

// KPICategory groups metrics by audience (Marketing, Produit, Financier).
type KPICategory struct {
	Category string      `json:"category"`
	Metrics  []KPIMetric `json:"metrics"`
}

// KPIMetric is a single benchmarked indicator.
type KPIMetric struct {
	Name              string  `json:"name"`
	Value             float64 `json:"value"`
	Unit              string  `json:"unit"`
	Benchmark         float64 `json:"benchmark"`
	BenchmarkUnit     string  `json:"benchmarkUnit"`
	TopPerformerValue float64 `json:"topPerformerValue"`
	TopPerformerUnit  string  `json:"topPerformerUnit"`
	Description       string  `json:"description"`
	Source            string  `json:"source"`
}

// CustomerInsights holds segment and funnel metrics.
type CustomerInsights struct {
	Segments        []CustomerSegment `json:"segments"`
	CustomerJourney JourneyMetrics    `json:"customerJourney"`
}

// CustomerSegment quantifies one customer group.
type CustomerSegment struct {
	Name                string  `json:"name"`
	Size                float64 `json:"size"`
	SizeUnit            string  `json:"sizeUnit"`
	AverageRevenue      float64 `json:"averageRevenue"`
	AverageRevenueUnit  string  `json:"averageRevenueUnit"`
	AcquisitionCost     float64 `json:"acquisitionCost"`
	AcquisitionCostUnit string  `json:"acquisitionCostUnit"`
	RetentionRate       float64 `json:"retentionRate"`
	RetentionRateUnit   string  `json:"retentionRateUnit"`
	LifetimeValue       float64 `json:"lifetimeValue"`
	LifetimeValueUnit   string  `json:"lifetimeValueUnit"`
}

// JourneyMetrics quantifies the conversion funnel.
type JourneyMetrics struct {
	AverageConversionTime       float64 `json:"averageConversionTime"`
	AverageConversionTimeUnit   string  `json:"averageConversionTimeUnit"`
	TouchpointsBeforeConversion float64 `json:"touchpointsBeforeConversion"`
	AbandonmentRate             float64 `json:"abandonmentRate"`
	AbandonmentRateUnit         string  `json:"abandonmentRateUnit"`
	MostEffectiveChannel        string  `json:"mostEffectiveChannel"`
	ChannelEffectivenessRate    float64 `json:"channelEffectivenessRate"`
	ChannelEffectivenessUnit    string  `json:"channelEffectivenessRateUnit"`
}

// CompetitiveLandscape describes market structure.
type CompetitiveLandscape struct {
	MarketConcentration       float64  `json:"marketConcentration"`
	MarketConcentrationUnit   string   `json:"marketConcentrationUnit"`
	TopPlayersMarketShare     float64  `json:"topPlayersMarketShare"`
	TopPlayersMarketShareUnit string   `json:"topPlayersMarketShareUnit"`
	EntryBarriers             []string `json:"entryBarriers"`
	DisruptiveThreats         []string `json:"disruptiveThreats"`
	ConsolidationTrend        string   `json:"consolidationTrend"`
}

// FutureForecast carries short- and medium-term projections.
type FutureForecast struct {
	ShortTerm  ForecastPeriod `json:"shortTerm"`
	MediumTerm ForecastPeriod `json:"mediumTerm"`
}

// ForecastPeriod is one projection window.
type ForecastPeriod struct {
	Timeframe             string   `json:"timeframe"`
	ProjectedGrowth       float64  `json:"projectedGrowth"`
	ProjectedGrowthUnit   string   `json:"projectedGrowthUnit"`
	EmergingOpportunities []string `json:"emergingOpportunities"`
	PotentialThreats      []string `json:"potentialThreats"`
}

// DataSource cites where a market figure came from.
type DataSource struct {
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	Publisher            string  `json:"publisher"`
	Year                 int     `json:"year"`
	CredibilityScore     float64 `json:"credibilityScore"`
	CredibilityScoreUnit string  `json:"credibilityScoreUnit"`
	URL                  string  `json:"url"`
}

// HeuristicAnalysis evaluates the site against Nielsen's ten
// usability principles.
type HeuristicAnalysis struct {
	Summary    HeuristicSummary     `json:"summary"`
	Principles []HeuristicPrinciple `json:"principles"`
}

// HeuristicSummary tallies principle evaluations by severity.
type HeuristicSummary struct {
	Strengths      int `json:"strengths"`
	Improvements   int `json:"improvements"`
	CriticalIssues int `json:"criticalIssues"`
}

// HeuristicPrinciple is one principle evaluation, scored 0-10.
type HeuristicPrinciple struct {
	Principle       string  `json:"principle"`
	Status          string  `json:"status"` // success | warning | error
	Score           float64 `json:"score"`
	Description     string  `json:"description"`
	Details         string  `json:"details"`
	Recommendations string  `json:"recommendations"`
}

// UserJourney maps the visitor funnel stage by stage.
type UserJourney struct {
	JourneySteps   []JourneyStep `json:"journeySteps"`
	CriticalPoints []string      `json:"criticalPoints"`
}

// JourneyStep is one stage of the interaction funnel.
type JourneyStep struct {
	Stage          string   `json:"stage"`
	Touchpoint     string   `json:"touchpoint"`
	UserGoal       string   `json:"userGoal"`
	UserEmotion    string   `json:"userEmotion"` // positive | neutral | negative
	FrictionPoints []string `json:"frictionPoints"`
	Opportunities  []string `json:"opportunities"`
}

// SiteProfile is the industry profile generated ahead of the journey
// analysis to give the model sector context.
type SiteProfile struct {
	Industry            string   `json:"industry"`
	Sector              string   `json:"sector"`
	BusinessType        string   `json:"businessType"`
	EstimatedSize       string   `json:"estimatedSize"`
	TargetAudience      string   `json:"targetAudience"`
	LikelyGoals         []string `json:"likelyGoals"`
	PotentialChallenges []string `json:"potentialChallenges"`
	KeyFeatures         []string `json:"keyFeatures"`
}
