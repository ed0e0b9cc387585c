package domain

import (
	"fmt"
	"strings"
)

// Preset names a dashboard quick action that rewrites several days at once.
type Preset string

const (
	PresetWeekdaysStandard   Preset = "weekdays-standard"
	PresetCopyMondayWeekdays Preset = "copy-monday-weekdays"
	PresetCopyMondayAll      Preset = "copy-monday-all"
)

var weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// ParsePreset resolves a preset name, ignoring case and surrounding spaces.
func ParsePreset(raw string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(raw))); p {
	case PresetWeekdaysStandard, PresetCopyMondayWeekdays, PresetCopyMondayAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, raw)
	}
}

// ApplyPreset returns a new schedule with the preset applied; s is left untouched.
func ApplyPreset(s WeeklySchedule, preset Preset) (WeeklySchedule, error) {
	switch preset {
	case PresetWeekdaysStandard:
		out := s.Clone()
		for _, day := range weekdays {
			out[day] = DaySchedule{IsOpen: true, OpensAt: "09:00", ClosesAt: "18:00"}
		}
		return out, nil
	case PresetCopyMondayWeekdays:
		return s.CopyDay(Monday, weekdays[1:]...), nil
	case PresetCopyMondayAll:
		return s.CopyDay(Monday, DayOrder()[1:]...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}
