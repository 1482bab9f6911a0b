package model

import "time"

// SavedAnalysis is one archived report. Records are immutable after
// creation; the store keeps only the 10 most recent.
type SavedAnalysis struct {
	ID     string         `json:"id"`
	URL    string         `json:"url"`
	Date   time.Time      `json:"date"`
	Result AnalysisResult `json:"result"`
}

// Usage is the persisted daily quota state.
type Usage struct {
	Count     int       `json:"count"`
	LastReset time.Time `json:"lastReset"`
}

// Quota is the caller-visible quota check result.
type Quota struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
}
