package domain

import (
	"strings"
	"time"
)

// Day identifies a calendar day using the lowercase Spanish keys stored on listing documents.
type Day string

const (
	Monday    Day = "lunes"
	Tuesday   Day = "martes"
	Wednesday Day = "miercoles"
	Thursday  Day = "jueves"
	Friday    Day = "viernes"
	Saturday  Day = "sabado"
	Sunday    Day = "domingo"
)

const daysPerWeek = 7

// DayOrder returns the canonical Monday-first week. Every "next day" computation walks this slice.
func DayOrder() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

var dayIndex = map[Day]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// Index returns the position of d in DayOrder, or -1 for unknown keys.
func (d Day) Index() int {
	if idx, ok := dayIndex[d]; ok {
		return idx
	}
	return -1
}

func (d Day) Valid() bool { return d.Index() >= 0 }

// DayAt returns the day at position i of the week, wrapping around in both directions.
func DayAt(i int) Day {
	i %= daysPerWeek
	if i < 0 {
		i += daysPerWeek
	}
	return DayOrder()[i]
}

// DayFromWeekday maps Go's Sunday-first weekday onto the Monday-first order.
func DayFromWeekday(w time.Weekday) Day {
	return DayAt(int(w) + daysPerWeek - 1)
}

// legacyPrefix is the capitalized three-letter key prefix used by the flattened hours field.
func (d Day) legacyPrefix() string {
	key := string(d)
	if len(key) < 3 {
		return strings.ToUpper(key)
	}
	return strings.ToUpper(key[:1]) + key[1:3]
}
