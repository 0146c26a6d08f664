//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitiatedBooking(t *testing.T) *booking.Booking {
	t.Helper()

	stay := booking.ReconstructStayDates(date(2026, 10, 5), date(2026, 10, 8))
	b := booking.NewBooking(
		uuid.New(), uuid.New(),
		stay,
		mustGuests(t, 2, 0),
		mustMeals(t, 0, 0),
		"+911234567890",
		booking.PriceBreakdown{Nights: 3, WeekdayNights: 3, RoomWeekday: 6000, Subtotal: 6000, Tax: 600, GrandTotal: 6600},
		"order_abc123",
	)
	return b
}

func TestNewBooking(t *testing.T) {
	b := newInitiatedBooking(t)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.PaymentInitiated, b.PaymentStatus())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, booking.RefundNone, b.RefundStatus())
	assert.False(t, b.IsCancelled())
	assert.Nil(t, b.GatewayPaymentID())
	assert.Equal(t, "order_abc123", b.GatewayOrderID())
}

func TestMarkPaid(t *testing.T) {
	t.Run("initiated booking becomes paid and confirmed", func(t *testing.T) {
		b := newInitiatedBooking(t)

		require.NoError(t, b.MarkPaid("pay_xyz789"))

		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		require.NotNil(t, b.GatewayPaymentID())
		assert.Equal(t, "pay_xyz789", *b.GatewayPaymentID())
	})

	t.Run("empty payment id is rejected", func(t *testing.T) {
		b := newInitiatedBooking(t)
		assert.ErrorIs(t, b.MarkPaid(""), booking.ErrEmptyPaymentID)
	})

	t.Run("already paid booking cannot be paid again", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.MarkPaid("pay_1"))
		assert.ErrorIs(t, b.MarkPaid("pay_2"), booking.ErrNotInitiated)
	})

	t.Run("cancelled booking cannot be paid", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.CancelAsDuplicate(time.Now()))
		assert.ErrorIs(t, b.MarkPaid("pay_1"), booking.ErrAlreadyCancelled)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC)

	t.Run("paid booking cancels with a gateway refund pending", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.MarkPaid("pay_xyz789"))

		require.NoError(t, b.Cancel("change of plans", "", booking.NewMoney(3300), "rfnd_123", now))

		assert.True(t, b.IsCancelled())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, booking.RefundInitiated, b.RefundStatus())
		assert.Equal(t, int64(3300), b.RefundAmount().Rupees())
		require.NotNil(t, b.RefundID())
		assert.Equal(t, "rfnd_123", *b.RefundID())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, booking.CancelledByUser, *b.CancelledBy())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
	})

	t.Run("zero refund completes immediately without a refund id", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.MarkPaid("pay_xyz789"))

		require.NoError(t, b.Cancel("too late", "", booking.NewMoney(0), "", now))

		assert.Equal(t, booking.RefundCompleted, b.RefundStatus())
		assert.Nil(t, b.RefundID())
	})

	t.Run("unpaid booking cannot be cancelled through the refund path", func(t *testing.T) {
		b := newInitiatedBooking(t)
		assert.ErrorIs(t, b.Cancel("reason", "", booking.NewMoney(0), "", now), booking.ErrNotPaid)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.MarkPaid("pay_xyz789"))
		require.NoError(t, b.Cancel("reason", "", booking.NewMoney(0), "", now))

		assert.ErrorIs(t, b.Cancel("again", "", booking.NewMoney(0), "", now), booking.ErrAlreadyCancelled)
		assert.ErrorIs(t, b.CancelAsDuplicate(now), booking.ErrAlreadyCancelled)
		assert.ErrorIs(t, b.MarkPaid("pay_2"), booking.ErrAlreadyCancelled)
	})
}

func TestCancelAsDuplicate(t *testing.T) {
	now := time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC)

	t.Run("initiated sibling is system-cancelled without refund", func(t *testing.T) {
		b := newInitiatedBooking(t)

		require.NoError(t, b.CancelAsDuplicate(now))

		assert.True(t, b.IsCancelled())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, booking.CancelledBySystem, *b.CancelledBy())
		require.NotNil(t, b.CancelReason())
		assert.Equal(t, booking.SystemCancelReason, *b.CancelReason())
		assert.Equal(t, booking.RefundNone, b.RefundStatus())
		assert.Equal(t, int64(0), b.RefundAmount().Rupees())
	})

	t.Run("paid booking is never closed as a duplicate", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.MarkPaid("pay_xyz789"))
		assert.ErrorIs(t, b.CancelAsDuplicate(now), booking.ErrNotInitiated)
	})
}

func TestRefreshQuote(t *testing.T) {
	t.Run("initiated booking takes a fresh snapshot and order id", func(t *testing.T) {
		b := newInitiatedBooking(t)
		fresh := booking.PriceBreakdown{Nights: 3, WeekdayNights: 3, RoomWeekday: 6000, MealAmount: 500, Subtotal: 6500, Tax: 650, GrandTotal: 7150}

		err := b.RefreshQuote(fresh, mustGuests(t, 3, 0), mustMeals(t, 2, 0), "+919999999999", "order_def456")
		require.NoError(t, err)

		assert.Equal(t, fresh, b.Price())
		assert.Equal(t, "order_def456", b.GatewayOrderID())
		assert.Equal(t, 3, b.Guests().Adults())
		assert.Equal(t, "+919999999999", b.Contact())
	})

	t.Run("paid booking cannot be refreshed", func(t *testing.T) {
		b := newInitiatedBooking(t)
		require.NoError(t, b.MarkPaid("pay_xyz789"))
		err := b.RefreshQuote(booking.PriceBreakdown{}, mustGuests(t, 2, 0), mustMeals(t, 0, 0), "", "order_def456")
		assert.ErrorIs(t, err, booking.ErrNotInitiated)
	})
}

func TestStayDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)

	t.Run("same-day check-in is rejected whatever the hour", func(t *testing.T) {
		_, err := booking.NewStayDates(date(2026, 9, 1), date(2026, 9, 3), now)
		assert.ErrorIs(t, err, booking.ErrCheckInNotInFuture)

		lateEvening := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
		_, err = booking.NewStayDates(date(2026, 9, 1), date(2026, 9, 3), lateEvening)
		assert.ErrorIs(t, err, booking.ErrCheckInNotInFuture)
	})

	t.Run("same-day check-in is rejected whatever the clock's zone", func(t *testing.T) {
		// Dates arrive parsed in UTC while the clock runs in IST; only the
		// calendar date may decide.
		ist := time.FixedZone("IST", 5*3600+30*60)
		morningIST := time.Date(2026, 9, 1, 10, 0, 0, 0, ist)
		_, err := booking.NewStayDates(date(2026, 9, 1), date(2026, 9, 3), morningIST)
		assert.ErrorIs(t, err, booking.ErrCheckInNotInFuture)
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := booking.NewStayDates(date(2026, 9, 5), date(2026, 9, 5), now)
		assert.ErrorIs(t, err, booking.ErrCheckOutNotAfterCheckIn)

		_, err = booking.NewStayDates(date(2026, 9, 5), date(2026, 9, 4), now)
		assert.ErrorIs(t, err, booking.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("nights are date-granular", func(t *testing.T) {
		stay, err := booking.NewStayDates(date(2026, 9, 5), date(2026, 9, 8), now)
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("days before check-in count calendar days", func(t *testing.T) {
		stay := booking.ReconstructStayDates(date(2026, 9, 10), date(2026, 9, 12))

		fiveDaysOut := time.Date(2026, 9, 5, 6, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, stay.DaysBefore(fiveDaysOut))

		exactlyFive := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, stay.DaysBefore(exactlyFive))

		ist := time.FixedZone("IST", 5*3600+30*60)
		fiveDaysOutIST := time.Date(2026, 9, 5, 10, 0, 0, 0, ist)
		assert.Equal(t, 5, stay.DaysBefore(fiveDaysOutIST))
	})
}
