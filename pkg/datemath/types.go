package datemath

import (
	"strings"
	"time"
)

const (
	DateFormatISO  = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05"
)

// Weekdays lists the days in the order transcripts are scanned for them.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayByName = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, len(Weekdays))
	for _, wd := range Weekdays {
		m[strings.ToLower(wd.String())] = wd
	}
	return m
}()

// Anchors holds the dates derived from a single "now" reading.
type Anchors struct {
	Timestamp      string // now, YYYY-MM-DDTHH:MM:SS
	TodayISO       string
	WeekdayName    string // e.g. "Saturday"
	TomorrowISO    string
	NextOccurrence map[time.Weekday]string // never today's date
}
