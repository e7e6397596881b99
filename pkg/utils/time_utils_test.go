package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	// 2026-08-29T12:00:00Z
	sec := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, "2026-08-29T12:00:00Z", FormatTimestamp(sec))
}

func TestFormatTimestampZero(t *testing.T) {
	assert.Equal(t, "", FormatTimestamp(0))
	assert.Equal(t, "", FormatTimestamp(-5))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-08-29", FormatDate(time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().UTC().Format(DateLayout), Today())
}
