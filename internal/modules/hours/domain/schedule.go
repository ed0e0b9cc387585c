package domain

import (
	"errors"
	"fmt"
)

// DaySchedule is the rule for one calendar day. Times are meaningful only when IsOpen is set.
type DaySchedule struct {
	IsOpen   bool      `json:"abierto"`
	OpensAt  LocalTime `json:"desde"`
	ClosesAt LocalTime `json:"hasta"`
}

// Window returns the canonical opening and closing minutes of an open day.
// ok is false when the day is closed or either time is malformed.
func (d DaySchedule) Window() (open, close int, ok bool) {
	if !d.IsOpen {
		return 0, 0, false
	}
	open, openOK := d.OpensAt.Minutes()
	close, closeOK := d.ClosesAt.Minutes()
	if !openOK || !closeOK {
		return 0, 0, false
	}
	return open, close, true
}

// WeeklySchedule maps each day to its rule. Engine functions never mutate it.
type WeeklySchedule map[Day]DaySchedule

// IsEmpty reports whether the schedule carries no day at all.
func (s WeeklySchedule) IsEmpty() bool { return len(s) == 0 }

// HasOpenDay reports whether any day is open with a well-formed window.
func (s WeeklySchedule) HasOpenDay() bool {
	for _, day := range DayOrder() {
		if _, _, ok := s[day].Window(); ok {
			return true
		}
	}
	return false
}

// Clone returns an independent copy carrying all seven days.
func (s WeeklySchedule) Clone() WeeklySchedule {
	out := make(WeeklySchedule, daysPerWeek)
	for _, day := range DayOrder() {
		out[day] = s[day]
	}
	return out
}

// CopyDay returns a new schedule where every target day takes the rule of src.
func (s WeeklySchedule) CopyDay(src Day, targets ...Day) WeeklySchedule {
	out := s.Clone()
	rule := s[src]
	for _, target := range targets {
		if target.Valid() {
			out[target] = rule
		}
	}
	return out
}

// Validate checks the invariants editing surfaces must enforce before persisting. The
// classifier and formatter never call it: they degrade gracefully instead.
func (s WeeklySchedule) Validate() error {
	if s.IsEmpty() {
		return fmt.Errorf("%w: no days", ErrInvalidSchedule)
	}
	var errs []error
	for day := range s {
		if !day.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDay, day))
		}
	}
	for _, day := range DayOrder() {
		rule, ok := s[day]
		if !ok || !rule.IsOpen {
			continue
		}
		open, openOK := rule.OpensAt.Minutes()
		if !openOK {
			errs = append(errs, fmt.Errorf("%s opensAt %w: %q", day, ErrInvalidLocalTime, rule.OpensAt))
		}
		close, closeOK := rule.ClosesAt.Minutes()
		if !closeOK {
			errs = append(errs, fmt.Errorf("%s closesAt %w: %q", day, ErrInvalidLocalTime, rule.ClosesAt))
		}
		if openOK && closeOK && close <= open {
			errs = append(errs, fmt.Errorf("%s: %w", day, ErrWindowOrder))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSchedule, errors.Join(errs...))
}

// Normalize returns a seven-day copy with canonical "HH:MM" times on open days.
func (s WeeklySchedule) Normalize() WeeklySchedule {
	out := s.Clone()
	for day, rule := range out {
		if rule.IsOpen {
			if canonical := rule.OpensAt.Canonical(); canonical != "" {
				rule.OpensAt = canonical
			}
			if canonical := rule.ClosesAt.Canonical(); canonical != "" {
				rule.ClosesAt = canonical
			}
			out[day] = rule
		}
	}
	return out
}

// DefaultSchedule is the template offered to new listings: Monday to Friday 09:00–18:00,
// Saturday 09:00–14:00, Sunday closed.
func DefaultSchedule() WeeklySchedule {
	weekday := DaySchedule{IsOpen: true, OpensAt: "09:00", ClosesAt: "18:00"}
	return WeeklySchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  {IsOpen: true, OpensAt: "09:00", ClosesAt: "14:00"},
		Sunday:    {IsOpen: false, OpensAt: "09:00", ClosesAt: "18:00"},
	}
}
