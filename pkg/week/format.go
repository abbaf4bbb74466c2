package week

import (
	"fmt"
	"time"
)

// Spanish month names; the app is rendered in Spanish regardless of server locale.
var (
	monthsShort = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}
	monthsLong  = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// FormatRange renders "d MMM - d MMM yyyy", e.g. "30 dic - 5 ene 2025".
func FormatRange(start, end time.Time) string {
	return fmt.Sprintf("%d %s - %d %s %d",
		start.Day(), monthsShort[start.Month()-1],
		end.Day(), monthsShort[end.Month()-1], end.Year(),
	)
}

// FormatDate renders "d de MMMM, yyyy", e.g. "1 de enero, 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s, %d", t.Day(), monthsLong[t.Month()-1], t.Year())
}
