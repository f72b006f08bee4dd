package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	min, ok := ParseClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 570, min)

	min, ok = ParseClock("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, min)

	for _, bad := range []string{"", "9:3", "25:00", "09:61", "noon", "09.30"} {
		_, ok := ParseClock(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "16:45", FormatClock(1005))
}

func TestOverlaps(t *testing.T) {
	// [540,570) vs [570,600): touching, not overlapping.
	assert.False(t, Overlaps(540, 570, 570, 600))
	assert.False(t, Overlaps(570, 600, 540, 570))

	assert.True(t, Overlaps(540, 600, 570, 630))
	assert.True(t, Overlaps(570, 630, 540, 600))
	assert.True(t, Overlaps(540, 660, 570, 600), "containment")
	assert.True(t, Overlaps(570, 600, 540, 660))
}
