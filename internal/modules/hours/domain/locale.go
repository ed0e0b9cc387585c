package domain

import (
	"fmt"
	"strings"
)

// Locale carries the day abbreviations and status phrasing for one display language.
type Locale struct {
	name           string
	days           [daysPerWeek]string
	openUntil      string
	opensInMinutes string
	opensToday     string
	opensOnDay     string
	closed         string
	unavailable    string
}

// Spanish is the default display language of the directory.
var Spanish = Locale{
	name:           "es",
	days:           [daysPerWeek]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"},
	openUntil:      "Abierto (hasta %s)",
	opensInMinutes: "Cerrado – Abre en %d minutos",
	opensToday:     "Cerrado – Abre a las %s",
	opensOnDay:     "Cerrado – Abre %s a las %s",
	closed:         "Cerrado",
	unavailable:    "Horario no disponible",
}

var English = Locale{
	name:           "en",
	days:           [daysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	openUntil:      "Open (until %s)",
	opensInMinutes: "Closed – Opens in %d minutes",
	opensToday:     "Closed – Opens at %s",
	opensOnDay:     "Closed – Opens %s at %s",
	closed:         "Closed",
	unavailable:    "Hours unavailable",
}

// LocaleByName resolves "es"/"en" style tags, falling back to Spanish.
func LocaleByName(name string) Locale {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "en", "en-us", "en-gb", "english":
		return English
	default:
		return Spanish
	}
}

// Locales lists every supported display language, default first.
func Locales() []Locale { return []Locale{Spanish, English} }

func (l Locale) Name() string { return l.name }

// Abbrev returns the short label of d, or "" for unknown days.
func (l Locale) Abbrev(d Day) string {
	idx := d.Index()
	if idx < 0 {
		return ""
	}
	return l.days[idx]
}

// UnavailableLabel is the copy callers show when the formatter returns an empty string.
func (l Locale) UnavailableLabel() string { return l.unavailable }

func (l Locale) openLabel(closesAt LocalTime) string {
	return fmt.Sprintf(l.openUntil, closesAt)
}

func (l Locale) opensInLabel(minutes int) string {
	return fmt.Sprintf(l.opensInMinutes, minutes)
}

func (l Locale) opensTodayLabel(opensAt LocalTime) string {
	return fmt.Sprintf(l.opensToday, opensAt)
}

func (l Locale) opensOnLabel(day Day, opensAt LocalTime) string {
	return fmt.Sprintf(l.opensOnDay, l.Abbrev(day), opensAt)
}
