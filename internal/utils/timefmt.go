package utils

import (
	"time"
)

// outputTimestampLayout renders YYMMDD_HHMMSS.
const outputTimestampLayout = "060102_150405"

// FormatOutputTimestamp returns the provided time in the local time zone with
// second precision, suitable for naming output artifacts.
func FormatOutputTimestamp(value time.Time) string {
	return value.In(time.Local).Format(outputTimestampLayout)
}
