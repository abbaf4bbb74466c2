package usecase

import (
	"fmt"
	"strings"
	"time"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/week"
)

// BuildWeeklyReport renders the shareable plain-text summary of a week,
// formatted for messaging apps (*bold*, _italic_).
func BuildWeeklyReport(s *domain.ReviewSummary) string {
	var completed, pending []string
	for _, g := range s.Goals {
		if g.Completed {
			completed = append(completed, "✅ "+g.Title)
		} else {
			pending = append(pending, "⏳ "+g.Title)
		}
	}

	completedText := "Ninguno aún"
	if len(completed) > 0 {
		completedText = strings.Join(completed, "\n")
	}
	pendingText := "¡Todo listo! 🎉"
	if len(pending) > 0 {
		pendingText = strings.Join(pending, "\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*REPORTE SEMANAL - SEMANA %d* %s\n", s.Week.WeekNumber, s.Performance.Trend)
	if span := reportSpan(s.Week); span != "" {
		b.WriteString(span + "\n")
	}
	b.WriteString("\n")
	b.WriteString("*PROGRESO:*\n")
	fmt.Fprintf(&b, "%d%% completado (%d/%d metas)\n", s.CompletionRate, s.Completed, s.Total)
	b.WriteString(s.Performance.Message + "\n\n")
	fmt.Fprintf(&b, "*✅ LOGROS (%d):*\n%s\n\n", len(completed), completedText)
	fmt.Fprintf(&b, "*⏳ PENDIENTES (%d):*\n%s\n\n", len(pending), pendingText)
	b.WriteString("_Enviado desde The Goals Project 🎯_")
	return b.String()
}

// reportSpan renders "Del 13 de enero, 2025 al 19 de enero, 2025", or "" without dates.
func reportSpan(w domain.WeekView) string {
	start, err := time.Parse(week.DateLayout, w.WeekStart)
	if err != nil {
		return ""
	}
	end, err := time.Parse(week.DateLayout, w.WeekEnd)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Del %s al %s", week.FormatDate(start), week.FormatDate(end))
}
