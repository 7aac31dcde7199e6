package reports

import (
	"testing"
	"time"
)

func TestWindowsAtMidWeek(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 3, 19, 15, 30, 0, 0, time.UTC)
	w := WindowsAt(now)

	if !w.TodayStart.Equal(time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("today start: got %v", w.TodayStart)
	}
	if !w.WeekStart.Equal(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("week start should be Monday, got %v", w.WeekStart)
	}
	if !w.MonthStart.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("month start: got %v", w.MonthStart)
	}
	if !w.TrendStart.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("trend start should cover 12 months inclusive, got %v", w.TrendStart)
	}
}

func TestWindowsAtSunday(t *testing.T) {
	now := time.Date(2025, 3, 23, 9, 0, 0, 0, time.UTC)
	w := WindowsAt(now)

	if !w.WeekStart.Equal(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("sunday belongs to the Monday-started week, got %v", w.WeekStart)
	}
}

func TestWindowsAtMonday(t *testing.T) {
	now := time.Date(2025, 3, 17, 0, 30, 0, 0, time.UTC)
	w := WindowsAt(now)

	if !w.WeekStart.Equal(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("monday starts its own week, got %v", w.WeekStart)
	}
}

func TestWindowsAtNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, 3, 20, 2, 0, 0, 0, loc) // 2025-03-19T21:00:00Z
	w := WindowsAt(now)

	if !w.Now.Equal(time.Date(2025, 3, 19, 21, 0, 0, 0, time.UTC)) {
		t.Fatalf("now not normalized: %v", w.Now)
	}
	if !w.TodayStart.Equal(time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("today derived from UTC day, got %v", w.TodayStart)
	}
}

func TestWindowsJanuaryTrendCrossesYear(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	w := WindowsAt(now)

	if !w.TrendStart.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("trend start: got %v", w.TrendStart)
	}
}

func TestWindowBounds(t *testing.T) {
	w := WindowsAt(time.Date(2025, 3, 19, 15, 0, 0, 0, time.UTC))

	weekly := w.Weekly()
	if !weekly.Contains(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("week start is inclusive")
	}
	if weekly.Contains(time.Date(2025, 3, 16, 23, 59, 59, 0, time.UTC)) {
		t.Fatal("before week start must be excluded")
	}
	if weekly.Contains(w.Now) {
		t.Fatal("end bound is exclusive")
	}

	if !AllTime.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("all-time window contains everything")
	}
}
