package store

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-06-15", "June 15, 2024"},
		{"2025-01-01", "January 1, 2025"},
		{"not-a-date", "not-a-date"},
	}
	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMonthYear(t *testing.T) {
	got := FormatMonthYear(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	if got != "June 2024" {
		t.Errorf("FormatMonthYear = %q, want %q", got, "June 2024")
	}
}

func TestStepMonthRollsOverAtMonthEnd(t *testing.T) {
	// Jan 31 + 1 month normalizes into March, standard date arithmetic.
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	next := stepMonth(start, DirectionNext)
	if next.Month() != time.March {
		t.Errorf("expected rollover into March, got %s", next.Month())
	}

	mid := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	prev := stepMonth(mid, DirectionPrev)
	if prev.Month() != time.May || prev.Day() != 15 {
		t.Errorf("expected May 15, got %s", prev.Format("2006-01-02"))
	}
}

func TestChangeScheduleWeekStepsSevenDays(t *testing.T) {
	gw := &mockGateway{}
	st := newTestStore(gw, gw)
	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	st.state.ScheduleWeek = start

	st.ChangeScheduleWeek(DirectionNext)
	if got := st.Snapshot().ScheduleWeek; !got.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("expected +7 days, got %s", got.Format("2006-01-02"))
	}

	st.ChangeScheduleWeek(DirectionPrev)
	st.ChangeScheduleWeek(DirectionPrev)
	if got := st.Snapshot().ScheduleWeek; !got.Equal(start.AddDate(0, 0, -7)) {
		t.Errorf("expected -7 days, got %s", got.Format("2006-01-02"))
	}
}
