package domain_test

import (
	"testing"
	"time"

	"fitweek/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCompletedAt(t *testing.T) {
	now := time.Date(2021, 5, 3, 18, 0, 0, 0, time.UTC)

	t.Run("all completed", func(t *testing.T) {
		got := domain.BatchCompletedAt([]domain.WorkoutLogEntry{
			{Completed: true}, {Completed: true},
		}, now)
		require.NotNil(t, got)
		assert.Equal(t, now, *got)
	})

	t.Run("one incomplete clears it", func(t *testing.T) {
		got := domain.BatchCompletedAt([]domain.WorkoutLogEntry{
			{Completed: true}, {Completed: false},
		}, now)
		assert.Nil(t, got)
	})

	t.Run("empty batch is vacuously complete", func(t *testing.T) {
		got := domain.BatchCompletedAt(nil, now)
		require.NotNil(t, got)
		assert.Equal(t, now, *got)
	})
}

func TestPremiumPayment_IsTerminal(t *testing.T) {
	p := domain.PremiumPayment{Status: domain.PaymentPending}
	assert.False(t, p.IsTerminal())

	p.Status = domain.PaymentSucceeded
	assert.True(t, p.IsTerminal())

	p.Status = domain.PaymentExpired
	assert.True(t, p.IsTerminal())
}
