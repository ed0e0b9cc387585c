package domain

import "time"

// imminentOpeningMinutes is the threshold under which the label counts down minutes.
const imminentOpeningMinutes = 30

// StatusResult is the live status of a listing at one instant. Empty times mean "none".
type StatusResult struct {
	IsOpen     bool      `json:"isOpen"`
	Label      string    `json:"label"`
	ClosesAt   LocalTime `json:"closesAt,omitempty"`
	OpensAt    LocalTime `json:"opensAt,omitempty"`
	OpensOn    string    `json:"opensOn,omitempty"`
	TodayLabel string    `json:"todayLabel"`
}

// Classify computes the status of s at now using Spanish labels.
func Classify(s WeeklySchedule, now time.Time) StatusResult {
	return Spanish.Classify(s, now)
}

// Classify computes the status of s at now. It never panics on malformed input: a broken window
// for today yields the "hours unavailable" result.
func (l Locale) Classify(s WeeklySchedule, now time.Time) StatusResult {
	today := DayFromWeekday(now.Weekday())
	todayLabel := l.Abbrev(today)

	if s.IsEmpty() {
		return l.unavailableResult(todayLabel)
	}

	rule, ok := s[today]
	if !ok || !rule.IsOpen {
		return l.closedUntilNext(s, today, todayLabel)
	}

	open, close, ok := rule.Window()
	if !ok {
		return l.unavailableResult(todayLabel)
	}
	opensAt := rule.OpensAt.Canonical()
	closesAt := rule.ClosesAt.Canonical()
	current := minutesOf(now)

	switch {
	case current < open:
		label := l.opensTodayLabel(opensAt)
		if open-current <= imminentOpeningMinutes {
			label = l.opensInLabel(open - current)
		}
		return StatusResult{
			Label:      label,
			OpensAt:    opensAt,
			OpensOn:    todayLabel,
			TodayLabel: todayLabel,
		}
	case current < close:
		return StatusResult{
			IsOpen:     true,
			Label:      l.openLabel(closesAt),
			ClosesAt:   closesAt,
			TodayLabel: todayLabel,
		}
	default:
		return l.closedUntilNext(s, today, todayLabel)
	}
}

func (l Locale) closedUntilNext(s WeeklySchedule, today Day, todayLabel string) StatusResult {
	next, ok := FindNextOpening(s, today.Index())
	if !ok {
		return StatusResult{Label: l.closed, TodayLabel: todayLabel}
	}
	return StatusResult{
		Label:      l.opensOnLabel(next.Day, next.OpensAt),
		OpensAt:    next.OpensAt,
		OpensOn:    l.Abbrev(next.Day),
		TodayLabel: todayLabel,
	}
}

func (l Locale) unavailableResult(todayLabel string) StatusResult {
	return StatusResult{Label: l.unavailable, TodayLabel: todayLabel}
}
