package reports

import "time"

// trendMonths is the size of the rolling sales-trend window, current month
// inclusive.
const trendMonths = 12

// Windows holds every boundary a report computation needs, derived once from a
// single "now" so concurrent sub-aggregations can never disagree on them.
type Windows struct {
	Now        time.Time
	TodayStart time.Time
	WeekStart  time.Time
	MonthStart time.Time
	TrendStart time.Time
}

// WindowsAt derives all report window boundaries from now. Weeks start on
// Monday; everything is computed in UTC.
func WindowsAt(now time.Time) Windows {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	daysSinceMonday := (int(today.Weekday()) + 6) % 7
	week := today.AddDate(0, 0, -daysSinceMonday)

	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	trend := month.AddDate(0, -(trendMonths - 1), 0)

	return Windows{
		Now:        now,
		TodayStart: today,
		WeekStart:  week,
		MonthStart: month,
		TrendStart: trend,
	}
}

// Weekly bounds the current week up to now.
func (w Windows) Weekly() Window {
	return Window{Start: w.WeekStart, End: w.Now}
}

// Monthly bounds the current calendar month up to now.
func (w Windows) Monthly() Window {
	return Window{Start: w.MonthStart, End: w.Now}
}

// Trend bounds the rolling 12-month series up to now.
func (w Windows) Trend() Window {
	return Window{Start: w.TrendStart, End: w.Now}
}
