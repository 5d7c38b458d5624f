package time

import (
	"strconv"
	"strings"
	"time"
)

const (
	timestampLayout = "02.01.2006 15:04"

	unitHours   = "годин"
	unitMinutes = "хвилин"
)

// FormatTimestamp renders t as DD.MM.YYYY HH:MM in t's own location.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatDuration renders d as whole hours and remaining minutes. Hours are
// left out when there are none, minutes are always present.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := int64(d / time.Hour)
	minutes := int64((d % time.Hour) / time.Minute)

	var sb strings.Builder
	if hours > 0 {
		sb.WriteString(strconv.FormatInt(hours, 10))
		sb.WriteString(" " + unitHours + " ")
	}

	sb.WriteString(strconv.FormatInt(minutes, 10))
	sb.WriteString(" " + unitMinutes)

	return sb.String()
}
