//go:build unit

package booking_test

import (
	"testing"
	"time"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(y int, m time.Month, d int) availability.CalendarDate {
	date, err := availability.NewCalendarDate(y, m, d)
	if err != nil {
		panic(err)
	}
	return date
}

func reconstruct(status booking.Status) *booking.Booking {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		mustDate(2025, time.June, 16),
		540, 600, 2,
		status,
		booking.NewNote("window seat"),
		now, now,
	)
}

func TestBooking_Cancel(t *testing.T) {
	t.Run("ConfirmedCancels", func(t *testing.T) {
		b := reconstruct(booking.StatusConfirmed)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("CancelledStaysCancelled", func(t *testing.T) {
		b := reconstruct(booking.StatusCancelled)
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})

	t.Run("CompletedCannotCancel", func(t *testing.T) {
		b := reconstruct(booking.StatusCompleted)
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCompleted)
	})
}

func TestBooking_Complete(t *testing.T) {
	t.Run("ConfirmedCompletes", func(t *testing.T) {
		b := reconstruct(booking.StatusConfirmed)
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("CancelledCannotComplete", func(t *testing.T) {
		b := reconstruct(booking.StatusCancelled)
		assert.ErrorIs(t, b.Complete(), booking.ErrAlreadyCancelled)
	})

	t.Run("CompletedStaysCompleted", func(t *testing.T) {
		b := reconstruct(booking.StatusCompleted)
		assert.ErrorIs(t, b.Complete(), booking.ErrAlreadyCompleted)
	})
}

func TestBooking_HasExpired(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Slot 09:00-10:00 on 2025-06-16 local time.
	b := reconstruct(booking.StatusConfirmed)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "BeforeSlot", now: time.Date(2025, time.June, 16, 8, 0, 0, 0, loc), want: false},
		{name: "DuringSlot", now: time.Date(2025, time.June, 16, 9, 30, 0, 0, loc), want: false},
		{name: "AtSlotEnd", now: time.Date(2025, time.June, 16, 10, 0, 0, 0, loc), want: false},
		{name: "AfterSlotEnd", now: time.Date(2025, time.June, 16, 10, 0, 1, 0, loc), want: true},
		{name: "NextDay", now: time.Date(2025, time.June, 17, 0, 0, 0, 0, loc), want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.HasExpired(tc.now, loc))
		})
	}
}

func TestBooking_Snapshot(t *testing.T) {
	b := reconstruct(booking.StatusConfirmed)
	s := b.Snapshot()

	assert.Equal(t, 540, s.SlotStart)
	assert.Equal(t, 600, s.SlotEnd)
	assert.Equal(t, 2, s.PartySize)
	assert.Equal(t, availability.BookingConfirmed, s.Status)

	require.NoError(t, b.Cancel())
	assert.Equal(t, availability.BookingCancelled, b.Snapshot().Status)
}
