package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Bookable windows, hours from opening (inclusive) to closing (exclusive).
// Weekends open earlier and close later than weekdays.
const (
	weekdayOpen  = 10
	weekdayClose = 19
	weekendOpen  = 9
	weekendClose = 20
)

// GenerateTimeSlots lists the bookable "HH:MM" start times for a date in
// 30-minute increments. An empty or unparseable date yields no slots.
func GenerateTimeSlots(date string) []string {
	if date == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}

	open, close := weekdayOpen, weekdayClose
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		open, close = weekendOpen, weekendClose
	}

	var slots []string
	for hour := open; hour < close; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
func TimeToMinutes(timeStr string) int {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// FormatTime renders a 24-hour "HH:MM" slot in 12-hour form, e.g. "1:30 PM".
func FormatTime(timeStr string) string {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return timeStr
	}
	h, _ := strconv.Atoi(parts[0])
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], ampm)
}
