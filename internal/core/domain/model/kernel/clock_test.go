package kernel_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2026, 3, 14, 0, 30, 0, 0, loc)

	start := kernel.StartOfDay(now)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var clock kernel.Clock = kernel.ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, clock.Now())
}
