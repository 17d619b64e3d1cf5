package booking

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// Horários fixos oferecidos no passo 3 (pausa de almoço entre 11:00 e 13:30).
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:30", "14:30", "15:30", "16:30", "17:30", "18:30",
}

func IsValidSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

type CalendarDay struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Day      int    `json:"day"`
	Weekday  int    `json:"weekday"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
}

// MonthDays lista os dias do mês de view; dias antes de today ficam desabilitados.
func MonthDays(view time.Time, today time.Time, selected *time.Time) []CalendarDay {
	first := startOfMonth(view)
	todayStart := timezone.Today(today)

	var days []CalendarDay
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:     d.Format(isoDate),
			Day:      d.Day(),
			Weekday:  int(d.Weekday()),
			Disabled: d.Before(todayStart),
			Selected: selected != nil && sameDay(*selected, d),
		})
	}
	return days
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
