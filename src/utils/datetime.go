package utils

import (
	"happyhomes/src/config"
	"time"

	"gorm.io/datatypes"
)

func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(config.DATE_FORMAT, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (datatypes.Time, error) {
	t, err := time.Parse(config.CLOCK_FORMAT_SECS, s)
	if err != nil {
		t, err = time.Parse(config.CLOCK_FORMAT, s)
		if err != nil {
			return 0, err
		}
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(config.DATE_FORMAT)
}

func FormatLongDate(d datatypes.Date) string {
	return time.Time(d).Format(config.LONG_DATE_FORMAT)
}

func FormatClock(t datatypes.Time) string {
	return clockTime(t).Format(config.CLOCK_FORMAT_SECS)
}

// FormatTwelveHour renders a clock time as 03:04 PM.
func FormatTwelveHour(t datatypes.Time) string {
	return clockTime(t).Format(config.TWELVE_HOUR_FORMAT)
}

func ClockBefore(a, b datatypes.Time) bool {
	return time.Duration(a) < time.Duration(b)
}

func clockTime(t datatypes.Time) time.Time {
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(t))
}
