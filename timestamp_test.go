package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertsToISODatetime(t *testing.T) {
	timestamp := TimestampFromTime(time.Unix(0, 0))
	assert.Equal(t, Timestamp("1970-01-01T00:00:00.000Z"), timestamp)

	now := time.Now()
	assert.Equal(t, Timestamp(now.UTC().Format(RFC3339Milli)), TimestampFromTime(now))
}

func TestKeepsTrailingZeros(t *testing.T) {
	timestamp := TimestampFromTime(time.UnixMilli(1704067200000))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", timestamp.String())
}
