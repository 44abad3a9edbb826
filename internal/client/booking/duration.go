package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVisitMinutes parses an "HH:MM:SS" visit duration, as the backend
// serializes attraction durations, into whole minutes. Seconds are carried
// proportionally (90s = 1.5 min rounds down to 1); the backend only emits
// zero-second values in practice.
func ParseVisitMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid duration %q: want HH:MM:SS", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q: want HH:MM:SS", s)
		}
		nums[i] = n
	}
	if nums[1] > 59 || nums[2] > 59 {
		return 0, fmt.Errorf("invalid duration %q: minutes and seconds must be < 60", s)
	}

	return nums[0]*60 + nums[1] + nums[2]/60, nil
}

// DayWindow is the daily visiting window for a custom trip, as wall-clock
// "15:04" boundaries.
type DayWindow struct {
	Start string
	End   string
}

// DefaultDayWindow is used when the user does not pick their own hours.
var DefaultDayWindow = DayWindow{Start: "09:00", End: "18:00"}

// Minutes returns the window length in minutes.
func (w DayWindow) Minutes() (int, error) {
	start, err := parseClock(w.Start)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(w.End)
	if err != nil {
		return 0, err
	}
	if end <= start {
		return 0, fmt.Errorf("invalid day window %s-%s: end must be after start", w.Start, w.End)
	}
	return end - start, nil
}

func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return h*60 + m, nil
}
