package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TicksPerSecond - the index stores times of day as 100ns ticks
const TicksPerSecond = 10_000_000

// TimeOfDay is a duration since midnight expressed in ticks. Only the time of day
// matters, never the date, so opening hours compare as plain integers.
type TimeOfDay int64

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(int64(hour*3600+minute*60+second) * TicksPerSecond)
}

// TimeOfDayOf returns the time of day of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return TimeOfDay(t.Sub(midnight).Nanoseconds() / 100)
}

// Ticks - raw value as stored in the index
func (t TimeOfDay) Ticks() int64 {
	return int64(t)
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(int64(t) * 100)
}

// String formats as HH:MM:SS
func (t TimeOfDay) String() string {
	secs := int64(t) / TicksPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	var h, m, sec int
	var err error
	switch strings.Count(s, ":") {
	case 1:
		_, err = fmt.Sscanf(s, "%d:%d", &h, &m)
	case 2:
		_, err = fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	default:
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || sec < 0 || sec > 59 || (h == 24 && (m > 0 || sec > 0)) {
		return 0, fmt.Errorf("time of day out of range %q", s)
	}
	return NewTimeOfDay(h, m, sec), nil
}

// UnmarshalJSON accepts the stored tick number as well as the "HH:MM:SS" string
// the CMS sends.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*t = 0
			return nil
		}
		parsed, err := ParseTimeOfDay(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var ticks int64
	if err := json.Unmarshal(data, &ticks); err != nil {
		return fmt.Errorf("time of day: %w", err)
	}
	*t = TimeOfDay(ticks)
	return nil
}
