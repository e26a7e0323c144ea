package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestHandoverRangeWeek(t *testing.T) {
	// 수요일 기준으로 그 주 월~일
	from, to := handoverRange("week", day(2026, time.September, 2))
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day(2026, time.August, 31), *from)
	assert.Equal(t, day(2026, time.September, 6), *to)
}

func TestHandoverRangeWeekOnSunday(t *testing.T) {
	// 일요일은 지난 월요일부터 시작하는 주에 속한다
	from, to := handoverRange("week", day(2026, time.September, 6))
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day(2026, time.August, 31), *from)
	assert.Equal(t, day(2026, time.September, 6), *to)
}

func TestHandoverRangeWeekOnMonday(t *testing.T) {
	from, to := handoverRange("week", day(2026, time.August, 31))
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day(2026, time.August, 31), *from)
	assert.Equal(t, day(2026, time.September, 6), *to)
}

func TestHandoverRangeMonth(t *testing.T) {
	from, to := handoverRange("month", day(2026, time.February, 15))
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day(2026, time.February, 1), *from)
	assert.Equal(t, day(2026, time.February, 28), *to)
}

func TestHandoverRangeLastMonth(t *testing.T) {
	from, to := handoverRange("lastMonth", day(2026, time.March, 15))
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day(2026, time.February, 1), *from)
	assert.Equal(t, day(2026, time.February, 28), *to)
}

func TestHandoverRangeLastMonthAcrossYear(t *testing.T) {
	from, to := handoverRange("lastMonth", day(2026, time.January, 10))
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day(2025, time.December, 1), *from)
	assert.Equal(t, day(2025, time.December, 31), *to)
}

func TestHandoverRangeAll(t *testing.T) {
	from, to := handoverRange("all", day(2026, time.February, 15))
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestHandoverRangeUnknownFilter(t *testing.T) {
	from, to := handoverRange("yesterday", day(2026, time.February, 15))
	assert.Nil(t, from)
	assert.Nil(t, to)
}
