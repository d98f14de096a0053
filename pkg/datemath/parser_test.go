package datemath_test

import (
	"testing"
	"time"

	"voice-task-tracker/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "Next week",
			relative: "next week",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to StartOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		current time.Weekday
		target  time.Weekday
		want    int
	}{
		{time.Saturday, time.Tuesday, 3},
		{time.Saturday, time.Saturday, 7},
		{time.Saturday, time.Sunday, 1},
		{time.Sunday, time.Saturday, 6},
		{time.Monday, time.Monday, 7},
		{time.Wednesday, time.Monday, 5},
	}

	for _, tt := range tests {
		t.Run(tt.current.String()+"->"+tt.target.String(), func(t *testing.T) {
			if got := datemath.DaysUntil(tt.current, tt.target); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextOccurrence_NeverToday(t *testing.T) {
	start := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC) // Monday
	for i := 0; i < 7; i++ {
		now := start.AddDate(0, 0, i)
		for _, wd := range datemath.Weekdays {
			got := datemath.NextOccurrence(now, wd)
			diff := int(got.Sub(datemath.StartOfDay(now)).Hours() / 24)
			if diff < 1 || diff > 7 {
				t.Errorf("NextOccurrence(%s, %s) is %d days ahead", now.Weekday(), wd, diff)
			}
			if got.Weekday() != wd {
				t.Errorf("NextOccurrence(%s, %s) landed on %s", now.Weekday(), wd, got.Weekday())
			}
		}
	}
}

func TestNewAnchors(t *testing.T) {
	now := time.Date(2025, 12, 6, 14, 5, 9, 0, time.UTC) // Saturday

	a := datemath.NewAnchors(now)

	if a.TodayISO != "2025-12-06" {
		t.Errorf("TodayISO = %s", a.TodayISO)
	}
	if a.WeekdayName != "Saturday" {
		t.Errorf("WeekdayName = %s", a.WeekdayName)
	}
	if a.TomorrowISO != "2025-12-07" {
		t.Errorf("TomorrowISO = %s", a.TomorrowISO)
	}
	if a.Timestamp != "2025-12-06T14:05:09" {
		t.Errorf("Timestamp = %s", a.Timestamp)
	}

	want := map[time.Weekday]string{
		time.Monday:    "2025-12-08",
		time.Tuesday:   "2025-12-09",
		time.Wednesday: "2025-12-10",
		time.Thursday:  "2025-12-11",
		time.Friday:    "2025-12-12",
		time.Saturday:  "2025-12-13",
		time.Sunday:    "2025-12-07",
	}
	for wd, date := range want {
		if a.NextOccurrence[wd] != date {
			t.Errorf("NextOccurrence[%s] = %s, want %s", wd, a.NextOccurrence[wd], date)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestParseDateTime(t *testing.T) {
	tcs := map[string]struct {
		in      string
		want    string
		wantErr bool
	}{
		"full":        {in: "2025-12-09T10:00:00", want: "2025-12-09T10:00:00"},
		"no seconds":  {in: "2025-12-09T10:00", want: "2025-12-09T10:00:00"},
		"space":       {in: "2025-12-09 18:30:00", want: "2025-12-09T18:30:00"},
		"offset kept": {in: "2025-12-09T10:00:00+07:00", want: "2025-12-09T10:00:00"},
		"date only":   {in: "2025-12-09", want: "2025-12-09T23:59:59"},
		"garbage":     {in: "next tuesday", wantErr: true},
		"bad month":   {in: "2025-13-01", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := datemath.ParseDateTime(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := got.Format(datemath.DateTimeFormat); s != tc.want {
				t.Errorf("got %s, want %s", s, tc.want)
			}
		})
	}
}
