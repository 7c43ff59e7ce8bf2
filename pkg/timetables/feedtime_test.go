package timetables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeedTime(t *testing.T) {
	testCases := []struct {
		value   string
		seconds int
	}{
		{"00:00:00", 0},
		{"07:15:00", 7*3600 + 15*60},
		{"23:59:59", 23*3600 + 59*60 + 59},
		// Post-midnight trips on the same service day
		{"24:05:00", 24*3600 + 5*60},
		{"25:10:30", 25*3600 + 10*60 + 30},
	}

	for _, testCase := range testCases {
		seconds, err := ParseFeedTime(testCase.value)

		assert.NoError(t, err, testCase.value)
		assert.Equal(t, testCase.seconds, seconds, testCase.value)
	}
}

func TestParseFeedTimeInvalid(t *testing.T) {
	for _, value := range []string{"", "07:15", "7:15:00:00", "ab:cd:ef", "07:60:00", "07:15:61", "-1:00:00"} {
		_, err := ParseFeedTime(value)

		assert.Error(t, err, value)
	}
}

func TestParseFeedTimeExtendedHoursOrderAfterMidnight(t *testing.T) {
	beforeMidnight, err := ParseFeedTime("23:59:59")
	assert.NoError(t, err)

	afterMidnight, err := ParseFeedTime("24:10:00")
	assert.NoError(t, err)

	assert.Greater(t, afterMidnight, beforeMidnight)
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "07:15", FormatClockTime(7*3600+15*60))
	assert.Equal(t, "00:00", FormatClockTime(0))
	assert.Equal(t, "23:59", FormatClockTime(23*3600+59*60+59))
	// Extended hours wrap back onto the wall clock
	assert.Equal(t, "01:10", FormatClockTime(25*3600+10*60))
}
