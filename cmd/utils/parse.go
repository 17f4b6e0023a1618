package utils

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const TimeLayout = "2006-01-02 15:04:05"

// ParseTime accepts unix seconds or TimeLayout in local time. Empty means zero time.
func ParseTime(str string) (time.Time, error) {
	if str == "" {
		return time.Time{}, nil
	}
	if sec, err := strconv.ParseInt(str, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}
	return time.ParseInLocation(TimeLayout, str, time.Local)
}

// ParseStartEndTime parses an optional range. Either side may be empty.
func ParseStartEndTime(start, end string) (startTime, endTime time.Time, err error) {
	startTime, err = ParseTime(start)
	if err != nil {
		err = errors.Wrapf(err, "bad start time %q", start)
		return
	}
	endTime, err = ParseTime(end)
	if err != nil {
		err = errors.Wrapf(err, "bad end time %q", end)
		return
	}
	if !startTime.IsZero() && !endTime.IsZero() && !startTime.Before(endTime) {
		err = errors.Errorf("start time(%s) must before end time(%s)", startTime, endTime)
	}
	return
}

// Unix is t in seconds, 0 for the zero time.
func Unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
