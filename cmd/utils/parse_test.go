package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseStartEndTime(t *testing.T) {
	start, end, err := ParseStartEndTime("", "")
	require.NoError(t, err)
	require.True(t, start.IsZero())
	require.Zero(t, Unix(end))

	start, end, err = ParseStartEndTime("1342445793", "2012-07-20 00:00:00")
	require.NoError(t, err)
	require.Equal(t, int64(1342445793), Unix(start))
	require.Equal(t, time.July, end.Month())

	_, _, err = ParseStartEndTime("1342445793", "1342445000")
	require.Error(t, err)

	_, _, err = ParseStartEndTime("yesterday", "")
	require.Error(t, err)
}
