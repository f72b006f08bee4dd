package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcuts/booking-api/internal/httperr"
	"github.com/sharpcuts/booking-api/internal/models"
)

func TestTransitions_OnlyFromConfirmed(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.NoError(t, CanReschedule(StatusConfirmed))

	for _, s := range []Status{StatusCancelled, StatusCompleted} {
		assert.True(t, httperr.IsBusiness(CanCancel(s), "invalid_state"))
		assert.True(t, httperr.IsBusiness(CanComplete(s), "invalid_state"))
		assert.True(t, httperr.IsBusiness(CanReschedule(s), "invalid_state"))
	}
}

func TestCancel_SetsStatusAndTimestamp(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	bk := &models.Booking{Status: models.BookingStatusConfirmed}

	require.NoError(t, Cancel(bk, now))
	assert.Equal(t, models.BookingStatusCancelled, bk.Status)
	require.NotNil(t, bk.CancelledAt)
	assert.Equal(t, now, *bk.CancelledAt)

	// A second cancel is rejected and leaves the record alone.
	err := Cancel(bk, now.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, now, *bk.CancelledAt)
}

func TestComplete_SetsStatusAndTimestamp(t *testing.T) {
	now := time.Date(2026, 9, 7, 18, 30, 0, 0, time.UTC)
	bk := &models.Booking{Status: models.BookingStatusConfirmed}

	require.NoError(t, Complete(bk, now))
	assert.Equal(t, models.BookingStatusCompleted, bk.Status)
	require.NotNil(t, bk.CompletedAt)
	assert.Equal(t, now, *bk.CompletedAt)

	err := Cancel(bk, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
