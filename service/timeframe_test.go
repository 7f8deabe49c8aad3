package service

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeFrame(t *testing.T) {
	for _, valid := range []string{"Today", "NextDay", "CurrentWeek"} {
		frame, err := ParseTimeFrame(valid)
		if err != nil {
			t.Errorf("ParseTimeFrame(%q) error = %v", valid, err)
		}
		if string(frame) != valid {
			t.Errorf("ParseTimeFrame(%q) = %q", valid, frame)
		}
	}

	for _, invalid := range []string{"", "today", "ThisWeek", "garbage"} {
		_, err := ParseTimeFrame(invalid)
		var svcErr *Error
		if !errors.As(err, &svcErr) || svcErr.Code != CodeInvalidArgument {
			t.Errorf("ParseTimeFrame(%q) error = %v, want invalid_argument", invalid, err)
		}
	}
}

func TestTimeFrameWindow(t *testing.T) {
	// Wednesday 2024-05-15 10:30 UTC.
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		frame TimeFrame
		start time.Time
		end   time.Time
	}{
		{TimeFrameToday, now, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)},
		{TimeFrameNextDay, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)},
		{TimeFrameCurrentWeek, now, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frame), func(t *testing.T) {
			start, end := tt.frame.Window(now)
			if !start.Equal(tt.start) {
				t.Errorf("Window() start = %v, want %v", start, tt.start)
			}
			if !end.Equal(tt.end) {
				t.Errorf("Window() end = %v, want %v", end, tt.end)
			}
		})
	}
}

func TestMondayOfWeek(t *testing.T) {
	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		day  time.Time
	}{
		{"monday itself", time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)},
		{"midweek", time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2024, 5, 19, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mondayOfWeek(tt.day); !got.Equal(monday) {
				t.Errorf("mondayOfWeek(%v) = %v, want %v", tt.day, got, monday)
			}
		})
	}
}
