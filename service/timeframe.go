package service

import (
	"time"
)

// TimeFrame names a relative expiry window for incoming todos.
type TimeFrame string

const (
	TimeFrameToday       TimeFrame = "Today"
	TimeFrameNextDay     TimeFrame = "NextDay"
	TimeFrameCurrentWeek TimeFrame = "CurrentWeek"
)

// ParseTimeFrame converts a query-string value into a TimeFrame.
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case TimeFrameToday, TimeFrameNextDay, TimeFrameCurrentWeek:
		return TimeFrame(s), nil
	default:
		return "", Errorf(CodeInvalidArgument, "invalid timeFrame: %q", s)
	}
}

// Window computes the [start, end) expiry window for the frame, evaluated
// at the instant now.
func (f TimeFrame) Window(now time.Time) (start, end time.Time) {
	switch f {
	case TimeFrameNextDay:
		start = startOfDay(now).AddDate(0, 0, 1)
		end = start.AddDate(0, 0, 1)
	case TimeFrameCurrentWeek:
		start = now
		end = mondayOfWeek(now).AddDate(0, 0, 7)
	default: // Today
		start = now
		end = startOfDay(now).AddDate(0, 0, 1)
	}
	return start, end
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOfWeek shifts back to the most recent Monday on or before t,
// truncated to midnight.
func mondayOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -daysSinceMonday)
}
