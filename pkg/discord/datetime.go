package discord

import (
	"time"

	"bacabot/pkg/tz"
)

// FormatDateTime renders t in Western Indonesian Time, e.g. "15/02/2026 14:00 WIB".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Jakarta).Format("02/01/2006 15:04") + " WIB"
}
