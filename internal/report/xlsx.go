// Package report exports a saved analysis as an XLSX workbook.
package report

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/hyppe-labs/scoriz/internal/model"
)

// WriteXLSX writes the analysis as a workbook with one sheet per
// report section.
func WriteXLSX(w io.Writer, a model.SavedAnalysis) error {
	f := xlsx.NewFile()

	builders := []func(*xlsx.File, model.SavedAnalysis) error{
		addScoresSheet,
		addRecommendationsSheet,
		addHeuristicsSheet,
		addKPISheet,
		addJourneySheet,
	}
	for _, build := range builders {
		if err := build(f, a); err != nil {
			return err
		}
	}

	return eris.Wrap(f.Write(w), "report: write xlsx")
}

func addScoresSheet(f *xlsx.File, a model.SavedAnalysis) error {
	sheet, err := f.AddSheet("Scores")
	if err != nil {
		return eris.Wrap(err, "report: add scores sheet")
	}

	addRow(sheet, "URL", a.URL)
	addRow(sheet, "Date", a.Date.Format("2006-01-02 15:04"))
	addRow(sheet, "Score UX", formatScore(a.Result.UXScore))
	addRow(sheet)

	ds := a.Result.DetailedScores
	addRow(sheet, "Critère", "Score")
	addRow(sheet, "Clarté", formatScore(ds.Clarity))
	addRow(sheet, "Navigation", formatScore(ds.Navigation))
	addRow(sheet, "Accessibilité", formatScore(ds.Accessibility))
	addRow(sheet, "Performance", formatScore(ds.Performance))
	addRow(sheet, "Expérience mobile", formatScore(ds.MobileExperience))
	return nil
}

func addRecommendationsSheet(f *xlsx.File, a model.SavedAnalysis) error {
	sheet, err := f.AddSheet("Recommandations")
	if err != nil {
		return eris.Wrap(err, "report: add recommendations sheet")
	}

	addRow(sheet, "Titre", "Description", "Impact")
	for _, r := range a.Result.Recommendations {
		addRow(sheet, r.Title, r.Description, r.Impact)
	}
	return nil
}

func addHeuristicsSheet(f *xlsx.File, a model.SavedAnalysis) error {
	sheet, err := f.AddSheet("Heuristiques")
	if err != nil {
		return eris.Wrap(err, "report: add heuristics sheet")
	}

	h := a.Result.HeuristicAnalysis
	addRow(sheet, "Points forts", fmt.Sprintf("%d", h.Summary.Strengths))
	addRow(sheet, "Améliorations", fmt.Sprintf("%d", h.Summary.Improvements))
	addRow(sheet, "Points critiques", fmt.Sprintf("%d", h.Summary.CriticalIssues))
	addRow(sheet)

	addRow(sheet, "Principe", "Statut", "Score", "Description", "Recommandations")
	for _, p := range h.Principles {
		addRow(sheet, p.Principle, p.Status, formatScore(p.Score), p.Description, p.Recommendations)
	}
	return nil
}

func addKPISheet(f *xlsx.File, a model.SavedAnalysis) error {
	sheet, err := f.AddSheet("KPIs")
	if err != nil {
		return eris.Wrap(err, "report: add kpi sheet")
	}

	addRow(sheet, "Catégorie", "Indicateur", "Valeur", "Unité", "Benchmark", "Meilleur acteur", "Source")
	for _, cat := range a.Result.MarketData.KeyPerformanceIndicators {
		for _, m := range cat.Metrics {
			addRow(sheet, cat.Category, m.Name,
				formatScore(m.Value), m.Unit,
				formatScore(m.Benchmark), formatScore(m.TopPerformerValue),
				m.Source)
		}
	}
	return nil
}

func addJourneySheet(f *xlsx.File, a model.SavedAnalysis) error {
	sheet, err := f.AddSheet("Parcours")
	if err != nil {
		return eris.Wrap(err, "report: add journey sheet")
	}

	addRow(sheet, "Étape", "Point de contact", "Objectif", "Émotion", "Frictions", "Opportunités")
	for _, s := range a.Result.UserJourney.JourneySteps {
		addRow(sheet, s.Stage, s.Touchpoint, s.UserGoal, s.UserEmotion,
			joinLines(s.FrictionPoints), joinLines(s.Opportunities))
	}
	addRow(sheet)
	addRow(sheet, "Points critiques")
	for _, p := range a.Result.UserJourney.CriticalPoints {
		addRow(sheet, p)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}

func formatScore(v float64) string {
	return fmt.Sprintf("%g", v)
}

func joinLines(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += "\n"
		}
		out += s
	}
	return out
}
