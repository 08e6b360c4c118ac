package services_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestEventDateLockPolicy_IsLocked(t *testing.T) {
	policy := services.NewEventDateLockPolicy()
	today := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run("future event date is locked with whole days remaining", func(t *testing.T) {
		eventDate := today.AddDate(0, 0, 3)

		decision := policy.IsLocked(eventDate, today)

		assert.True(t, decision.Locked)
		assert.Equal(t, 3, decision.DaysRemaining)
	})

	t.Run("event today is unlocked", func(t *testing.T) {
		decision := policy.IsLocked(today, today)

		assert.False(t, decision.Locked)
		assert.Zero(t, decision.DaysRemaining)
	})

	t.Run("past event date is unlocked", func(t *testing.T) {
		decision := policy.IsLocked(today.AddDate(0, 0, -5), today)

		assert.False(t, decision.Locked)
	})

	t.Run("time of day is stripped before comparing", func(t *testing.T) {
		// Event at 00:01 tomorrow vs today at 23:59: still one whole day apart.
		eventDate := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)
		lateToday := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)

		decision := policy.IsLocked(eventDate, lateToday)

		assert.True(t, decision.Locked)
		assert.Equal(t, 1, decision.DaysRemaining)
	})

	t.Run("event later the same day is unlocked", func(t *testing.T) {
		eventDate := time.Date(2025, time.March, 10, 23, 0, 0, 0, time.UTC)
		earlyToday := time.Date(2025, time.March, 10, 1, 0, 0, 0, time.UTC)

		decision := policy.IsLocked(eventDate, earlyToday)

		assert.False(t, decision.Locked)
	})

	t.Run("epoch sentinel is always unlocked", func(t *testing.T) {
		decision := policy.IsLocked(services.UnspecifiedEventDate, today)

		assert.False(t, decision.Locked)
	})

	t.Run("zero time is always unlocked", func(t *testing.T) {
		decision := policy.IsLocked(time.Time{}, today)

		assert.False(t, decision.Locked)
	})

	t.Run("non-UTC inputs are normalized", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		eventDate := time.Date(2025, time.March, 12, 2, 0, 0, 0, loc) // March 11 21:00 UTC

		decision := policy.IsLocked(eventDate, today)

		assert.True(t, decision.Locked)
		assert.Equal(t, 1, decision.DaysRemaining)
	})
}
