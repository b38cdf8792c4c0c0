package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrhapile/techtriage/pkg/i18n"
	"github.com/mrhapile/techtriage/pkg/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	causeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	bulletStyle  = lipgloss.NewStyle().PaddingLeft(2)
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

func renderResult(result types.DiagnosisResult, lang string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(i18n.T("diagnosis_title", lang)) + "\n")
	if !result.Success {
		sb.WriteString(warnStyle.Render(i18n.T("general_advice", lang)) + "\n")
	}
	sb.WriteString(renderDiagnosis(result.Diagnosis, lang))
	if len(result.Alternatives) > 0 {
		sb.WriteString(sectionStyle.Render(i18n.T("alternatives", lang)) + "\n")
		for _, alt := range result.Alternatives {
			sb.WriteString(bulletStyle.Render(fmt.Sprintf("- %s (%.0f%%)",
				localizedCause(alt, lang), alt.Confidence*100)) + "\n")
		}
	}
	return sb.String()
}

func renderDiagnosis(d types.Diagnosis, lang string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n",
		sectionStyle.Render(i18n.T("probable_cause", lang)),
		causeStyle.Render(localizedCause(d, lang))))
	sb.WriteString(fmt.Sprintf("%s: %s\n",
		sectionStyle.Render(i18n.T("confidence", lang)),
		confidenceStyle(d.Confidence).Render(fmt.Sprintf("%.0f%%", d.Confidence*100))))
	sb.WriteString(sectionStyle.Render(i18n.T("solutions", lang)) + ":\n")
	for _, sol := range localizedSolutions(d, lang) {
		sb.WriteString(bulletStyle.Render("- "+sol) + "\n")
	}
	if d.Explanation != "" {
		sb.WriteString(faintStyle.Render(d.Explanation) + "\n")
	}
	return sb.String()
}

func confidenceStyle(confidence float64) lipgloss.Style {
	if confidence >= 0.6 {
		return goodStyle
	}
	return warnStyle
}

func localizedCause(d types.Diagnosis, lang string) string {
	if lang == i18n.LangArabic && d.CauseAr != "" {
		return d.CauseAr
	}
	return d.Cause
}

func localizedSolutions(d types.Diagnosis, lang string) []string {
	if lang == i18n.LangArabic && len(d.SolutionsAr) > 0 {
		return d.SolutionsAr
	}
	return d.Solutions
}
