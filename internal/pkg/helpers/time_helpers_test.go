package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestAddMonths(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain month", date(2023, time.March, 15), 1, date(2023, time.April, 15)},
		{"three months", date(2023, time.January, 10), 3, date(2023, time.April, 10)},
		{"year rollover", date(2023, time.November, 20), 3, date(2024, time.February, 20)},
		{"clamps jan 31 to feb 28", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamps jan 31 to feb 29 on leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps may 31 to jun 30", date(2023, time.May, 31), 1, date(2023, time.June, 30)},
		{"twelve months", date(2023, time.June, 5), 12, date(2024, time.June, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonthsKeepsClock(t *testing.T) {
	start := time.Date(2023, time.January, 31, 23, 59, 58, 123, time.UTC)
	got := AddMonths(start, 1)

	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 58, got.Second())
	assert.Equal(t, 123, got.Nanosecond())
}
