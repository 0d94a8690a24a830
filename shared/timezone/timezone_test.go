package timezone_test

import (
	"testing"
	"time"

	"fuego/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-01-15 20:30")

	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, "2025-01-15 20:30", timezone.Format(parsed, "2006-01-02 15:04"))
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)
	converted := timezone.ToAppTime(utc)

	assert.True(t, utc.Equal(converted))
	assert.Equal(t, timezone.GetLocation(), converted.Location())
}
