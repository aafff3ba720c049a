package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
)

func Now() time.Time {
	return time.Now().UTC()
}

func ParseStringToDatetime(layout, value string) (time.Time, error) {
	return time.Parse(layout, value)
}
