package domain

import (
	"regexp"
	"strings"

	"negociosHorarios/internal/shared/normalization"
)

var (
	// clockTokenPattern matches "HH:MM"-shaped substrings; range checks happen afterwards.
	clockTokenPattern = regexp.MustCompile(`[0-2][0-9]:[0-5][0-9]`)
	// legacyWindowPattern finds the "start-end" window of one legacy hours segment.
	legacyWindowPattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-–—]\s*(\d{1,2}:\d{2})`)
	dashReplacer        = strings.NewReplacer("–", "-", "—", "-")
)

// OpenClosePair is a single fallback window. Empty sides mean "unknown", never midnight.
type OpenClosePair struct {
	OpensAt  LocalTime `json:"opensAt"`
	ClosesAt LocalTime `json:"closesAt"`
}

// Complete reports whether both sides were found.
func (p OpenClosePair) Complete() bool {
	return !p.OpensAt.IsZero() && !p.ClosesAt.IsZero()
}

// ExtractOpenClosePair takes the first two valid time tokens of free text as opening and closing
// time. It has no notion of days: callers apply the pair uniformly.
func ExtractOpenClosePair(text string) OpenClosePair {
	var pair OpenClosePair
	for _, token := range clockTokenPattern.FindAllString(text, -1) {
		value, err := ParseLocalTime(token)
		if err != nil {
			continue
		}
		if pair.OpensAt == "" {
			pair.OpensAt = value
			continue
		}
		pair.ClosesAt = value
		break
	}
	return pair
}

// FlattenToDisplayString renders one "Lun 09:00-18:00" token per open day joined by "; ".
// Identical windows are not merged: the consumer of this field expects one token per day.
func FlattenToDisplayString(s WeeklySchedule) string {
	tokens := make([]string, 0, daysPerWeek)
	for _, day := range DayOrder() {
		rule := s[day]
		if _, _, ok := rule.Window(); !ok {
			continue
		}
		tokens = append(tokens, day.legacyPrefix()+" "+string(rule.OpensAt.Canonical())+"-"+string(rule.ClosesAt.Canonical()))
	}
	return strings.Join(tokens, groupSeparator)
}

// ParseLegacyHours rebuilds a structured schedule from a legacy hours string such as
// "Lun-Vie 09:00-18:00; Sáb 09:00-14:00". Days not mentioned are closed and the first window
// seen for a day wins. ok is false when no segment could be read.
func ParseLegacyHours(text string) (WeeklySchedule, bool) {
	out := closedWeek()
	assigned := make(map[Day]bool, daysPerWeek)
	for _, segment := range strings.Split(text, ";") {
		segment = strings.TrimSpace(segment)
		loc := legacyWindowPattern.FindStringSubmatchIndex(segment)
		if loc == nil {
			continue
		}
		opensAt, err := ParseLocalTime(segment[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		closesAt, err := ParseLocalTime(segment[loc[4]:loc[5]])
		if err != nil || opensAt == closesAt {
			continue
		}
		for _, token := range strings.Split(segment[:loc[0]], ",") {
			for _, day := range expandDayToken(token) {
				if assigned[day] {
					continue
				}
				out[day] = DaySchedule{IsOpen: true, OpensAt: opensAt, ClosesAt: closesAt}
				assigned[day] = true
			}
		}
	}
	if len(assigned) == 0 {
		return nil, false
	}
	return out, true
}

func closedWeek() WeeklySchedule {
	out := make(WeeklySchedule, daysPerWeek)
	for _, day := range DayOrder() {
		out[day] = DaySchedule{}
	}
	return out
}

func expandDayToken(token string) []Day {
	token = dashReplacer.Replace(token)
	from, to, isRange := strings.Cut(token, "-")
	if !isRange {
		if day, ok := ResolveDay(token); ok {
			return []Day{day}
		}
		return nil
	}
	start, okStart := ResolveDay(from)
	end, okEnd := ResolveDay(to)
	if !okStart || !okEnd || start.Index() > end.Index() {
		return nil
	}
	days := make([]Day, 0, end.Index()-start.Index()+1)
	for i := start.Index(); i <= end.Index(); i++ {
		days = append(days, DayAt(i))
	}
	return days
}

var dayAliases = map[string]Day{
	"lun": Monday, "lunes": Monday, "mon": Monday, "monday": Monday,
	"mar": Tuesday, "martes": Tuesday, "tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday,
	"mie": Wednesday, "miercoles": Wednesday, "wed": Wednesday, "wednesday": Wednesday,
	"jue": Thursday, "jueves": Thursday, "thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday,
	"vie": Friday, "viernes": Friday, "fri": Friday, "friday": Friday,
	"sab": Saturday, "sabado": Saturday, "sat": Saturday, "saturday": Saturday,
	"dom": Sunday, "domingo": Sunday, "sun": Sunday, "sunday": Sunday,
}

// ResolveDay maps a Spanish or English day name or abbreviation, with or without accents,
// to its Day key.
func ResolveDay(raw string) (Day, bool) {
	key := strings.TrimSuffix(normalization.FoldToken(raw), ".")
	if key == "" {
		return "", false
	}
	day, ok := dayAliases[key]
	return day, ok
}
