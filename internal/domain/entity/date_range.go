package entity

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used across flags, exports and the API.
const DateLayout = "2006-01-02"

// DateRange é um intervalo inclusivo de dias de calendário.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normaliza os dois extremos para o início do dia.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: TruncateDay(start), End: TruncateDay(end)}
}

// Contains reports whether t falls on any day between Start and End, both inclusive.
func (r DateRange) Contains(t time.Time) bool {
	day := TruncateDay(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days returns the number of calendar days in the range.
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
