package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// Parser converts relative date strings to absolute time.Time values.
// All arithmetic is done on the wall clock of the base time; the parser's
// location is only used to read the current time.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh", or "Local" for the host clock.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Now returns the current time in the parser's timezone.
func (p *Parser) Now() time.Time {
	return time.Now().In(p.location)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return StartOfDay(baseTime), nil
	case "tomorrow":
		return StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return StartOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return StartOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdayByName[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	return NextOccurrence(baseTime, targetWeekday), nil
}

// DaysUntil returns how many days lie between current and the next target weekday.
// The same weekday is a full week away, never zero.
func DaysUntil(current, target time.Weekday) int {
	if current < target {
		return int(target - current)
	}
	return 7 - int(current) + int(target)
}

// NextOccurrence returns midnight of the next day after now that falls on target.
func NextOccurrence(now time.Time, target time.Weekday) time.Time {
	return StartOfDay(now.AddDate(0, 0, DaysUntil(now.Weekday(), target)))
}

// StartOfDay returns midnight at the start of t's day, on t's wall clock.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// NewAnchors computes the reference dates used to resolve relative date
// language in a transcript. It is a pure function of now.
func NewAnchors(now time.Time) Anchors {
	next := make(map[time.Weekday]string, len(Weekdays))
	for _, wd := range Weekdays {
		next[wd] = NextOccurrence(now, wd).Format(DateFormatISO)
	}

	return Anchors{
		Timestamp:      now.Format(DateTimeFormat),
		TodayISO:       now.Format(DateFormatISO),
		WeekdayName:    now.Weekday().String(),
		TomorrowISO:    now.AddDate(0, 0, 1).Format(DateFormatISO),
		NextOccurrence: next,
	}
}

// dateTimeLayouts are the timestamp shapes accepted by ParseDateTime.
var dateTimeLayouts = []string{
	DateTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDateTime parses a wall-clock timestamp such as "2025-12-09T10:00:00".
// A bare date means the end of that day. Any zone offset is dropped, the
// result carries the stated wall clock in UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}

	day, err := time.Parse(DateFormatISO, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date time %q", value)
	}
	return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
}
