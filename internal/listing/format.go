package listing

import "fmt"

var malayWeekdays = [...]string{
	"Ahad",
	"Isnin",
	"Selasa",
	"Rabu",
	"Khamis",
	"Jumaat",
	"Sabtu",
}

var malayMonths = [...]string{
	"Januari",
	"Februari",
	"Mac",
	"April",
	"Mei",
	"Jun",
	"Julai",
	"Ogos",
	"September",
	"Oktober",
	"November",
	"Disember",
}

// FormatDateMS renders a "YYYY-MM-DD" date in Malay long form, e.g.
// "Jumaat, 5 September 2025". Returns "" for an empty or malformed date.
func FormatDateMS(dateStr string) string {
	day, ok := parseDate(dateStr)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s, %d %s %d",
		malayWeekdays[day.Weekday()],
		day.Day(),
		malayMonths[day.Month()-1],
		day.Year(),
	)
}
