package ticketService

import (
	"fmt"
	"strings"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// BusinessDaysBefore walks backward from ref until exactly n weekdays have
// been stepped over. Weekends are skipped without counting; holidays are not
// modeled. n=0 returns ref unchanged.
func BusinessDaysBefore(ref time.Time, n int) time.Time {
	d := ref
	for remaining := n; remaining > 0; {
		d = d.AddDate(0, 0, -1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			remaining--
		}
	}
	return d
}

// FormatLongDate renders a date the way Mexican legal documents spell it,
// e.g. "14 de marzo de 2025".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatUpperLongDate is the all-caps variant used inside complaint bodies,
// e.g. "14 DE MARZO DE 2025".
func FormatUpperLongDate(t time.Time) string {
	return strings.ToUpper(FormatLongDate(t))
}
