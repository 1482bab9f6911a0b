// Package pagescan captures a structural snapshot of a landing page:
// headings, navigation, calls to action, form fields and raw markup.
// The snapshot grounds the generation prompts; analysis proceeds
// without it when every scanner fails.
package pagescan

import "context"

// NavLink is one navigation anchor.
type NavLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CTA is a detected call-to-action element. Location is "above-fold"
// or "below-fold" when a renderer measured it, empty otherwise.
type CTA struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Location string `json:"location,omitempty"`
}

// FormField describes one input inside a form.
type FormField struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Snapshot is the structural inventory of a page.
type Snapshot struct {
	Title      string      `json:"pageTitle"`
	Headings   []string    `json:"headings"`
	Buttons    []string    `json:"buttons"`
	NavLinks   []NavLink   `json:"navigation"`
	CTAs       []CTA       `json:"mainCTAs"`
	FormFields []FormField `json:"formFields"`
	Forms      int         `json:"forms"`
	Images     int         `json:"images"`
	HTML       string      `json:"-"`
}

// Scanner captures a page snapshot.
type Scanner interface {
	Name() string
	Scan(ctx context.Context, targetURL string) (*Snapshot, error)
}
