package domain

import "strings"

const (
	groupSeparator = "; "
	rangeDash      = "–"
)

type windowKey struct {
	opensAt  LocalTime
	closesAt LocalTime
}

type windowGroup struct {
	key  windowKey
	days []Day
}

// FormatWeek renders s as compact text using Spanish day labels, e.g.
// "Lun–Vie 09:00–18:00; Sáb 09:00–14:00". A schedule without open days yields "".
func FormatWeek(s WeeklySchedule) string {
	return Spanish.FormatWeek(s)
}

// FormatWeek groups days sharing an identical window, in the order windows are first met while
// walking the week. Closed and malformed days are skipped.
func (l Locale) FormatWeek(s WeeklySchedule) string {
	groups := groupByWindow(s)
	if len(groups) == 0 {
		return ""
	}
	parts := make([]string, 0, len(groups))
	for _, group := range groups {
		parts = append(parts, l.renderGroup(group))
	}
	return strings.Join(parts, groupSeparator)
}

func groupByWindow(s WeeklySchedule) []windowGroup {
	var groups []windowGroup
	position := make(map[windowKey]int)
	for _, day := range DayOrder() {
		rule := s[day]
		if _, _, ok := rule.Window(); !ok {
			continue
		}
		key := windowKey{opensAt: rule.OpensAt.Canonical(), closesAt: rule.ClosesAt.Canonical()}
		idx, seen := position[key]
		if !seen {
			idx = len(groups)
			position[key] = idx
			groups = append(groups, windowGroup{key: key})
		}
		groups[idx].days = append(groups[idx].days, day)
	}
	return groups
}

func (l Locale) renderGroup(group windowGroup) string {
	window := string(group.key.opensAt) + rangeDash + string(group.key.closesAt)
	days := group.days
	switch {
	case len(days) == 1:
		return l.Abbrev(days[0]) + " " + window
	case len(days) > 2 && isConsecutiveRun(days):
		return l.Abbrev(days[0]) + rangeDash + l.Abbrev(days[len(days)-1]) + " " + window
	default:
		labels := make([]string, 0, len(days))
		for _, day := range days {
			labels = append(labels, l.Abbrev(day))
		}
		return strings.Join(labels, ", ") + " " + window
	}
}

// isConsecutiveRun reports whether days, already in week order, step by exactly one index.
func isConsecutiveRun(days []Day) bool {
	for i := 1; i < len(days); i++ {
		if days[i].Index() != days[i-1].Index()+1 {
			return false
		}
	}
	return true
}
