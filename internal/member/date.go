package member

import (
	"fmt"
	"strconv"
	"strings"
)

// months maps month numbers 1-12 to their display abbreviations
var months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatJoinDate converts a raw "month/day/year" join date to "Mon D, YYYY".
// The sheet does not guarantee zero padding, so "3/4/2024" is fine.
// Anything that does not split into exactly three numeric parts with a
// month in range 1-12 is returned unchanged.
func FormatJoinDate(raw string) string {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return raw
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return raw
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return raw
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return raw
	}

	if month < 1 || month > 12 {
		return raw
	}

	return fmt.Sprintf("%s %d, %d", months[month-1], day, year)
}
