package domain

// NextOpening is the first future day the business trades.
type NextOpening struct {
	Day       Day
	OpensAt   LocalTime
	DaysAhead int
}

// FindNextOpening scans the seven days after startDayIndex (wrapping, so the start day itself is
// reached again at offset 7) and returns the first open day with a well-formed opening time.
// ok is false only when no day of the week qualifies.
func FindNextOpening(s WeeklySchedule, startDayIndex int) (NextOpening, bool) {
	for i := 1; i <= daysPerWeek; i++ {
		day := DayAt(startDayIndex + i)
		rule := s[day]
		if !rule.IsOpen {
			continue
		}
		opensAt := rule.OpensAt.Canonical()
		if opensAt == "" {
			continue
		}
		return NextOpening{Day: day, OpensAt: opensAt, DaysAhead: i}, true
	}
	return NextOpening{}, false
}
