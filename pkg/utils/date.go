package utils

import "time"

// DateLayout is the wire format for calendar dates; trades carry no time
// component.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ToPointer returns a pointer to the given value.
func ToPointer[T any](value T) *T {
	return &value
}
