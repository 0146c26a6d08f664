package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotInitiated     = errors.New("booking payment is not in initiated state")
	ErrNotPaid          = errors.New("booking has not been paid")
	ErrEmptyPaymentID   = errors.New("gateway payment id is required")
	ErrNegativeRefund   = errors.New("refund amount cannot be negative")
)

// Booking is one reservation attempt across its whole lifecycle. The money
// fields are a frozen snapshot taken at order creation; after payment they
// are immutable except for the refund fields set by cancellation.
type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	propertyID uuid.UUID

	stay    StayDates
	guests  GuestCount
	meals   MealSelection
	contact string

	price PriceBreakdown

	gatewayOrderID   string
	gatewayPaymentID *string
	paymentStatus    PaymentStatus
	status           Status

	cancelled    bool
	cancelledBy  *CancelActor
	cancelReason *string
	cancelNotes  *string
	refundAmount Money
	refundID     *string
	refundStatus RefundStatus
	cancelledAt  *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a fresh reservation attempt in the initiated state.
func NewBooking(
	userID, propertyID uuid.UUID,
	stay StayDates,
	guests GuestCount,
	meals MealSelection,
	contact string,
	price PriceBreakdown,
	gatewayOrderID string,
) *Booking {
	return &Booking{
		id:             uuid.New(),
		userID:         userID,
		propertyID:     propertyID,
		stay:           stay,
		guests:         guests,
		meals:          meals,
		contact:        contact,
		price:          price,
		gatewayOrderID: gatewayOrderID,
		paymentStatus:  PaymentInitiated,
		status:         StatusPending,
		refundStatus:   RefundNone,
	}
}

func ReconstructBooking(
	id, userID, propertyID uuid.UUID,
	stay StayDates,
	guests GuestCount,
	meals MealSelection,
	contact string,
	price PriceBreakdown,
	gatewayOrderID string,
	gatewayPaymentID *string,
	paymentStatus PaymentStatus,
	status Status,
	cancelled bool,
	refundStatus RefundStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		userID:           userID,
		propertyID:       propertyID,
		stay:             stay,
		guests:           guests,
		meals:            meals,
		contact:          contact,
		price:            price,
		gatewayOrderID:   gatewayOrderID,
		gatewayPaymentID: gatewayPaymentID,
		paymentStatus:    paymentStatus,
		status:           status,
		cancelled:        cancelled,
		refundStatus:     refundStatus,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// RefreshQuote overwrites the price snapshot, contact and guest split of a
// still-initiated booking that is being reused for a retried order attempt.
// The previous gateway order id is replaced.
func (b *Booking) RefreshQuote(
	price PriceBreakdown,
	guests GuestCount,
	meals MealSelection,
	contact string,
	gatewayOrderID string,
) error {
	if b.cancelled {
		return ErrAlreadyCancelled
	}
	if b.paymentStatus != PaymentInitiated {
		return ErrNotInitiated
	}

	b.price = price
	b.guests = guests
	b.meals = meals
	b.contact = contact
	b.gatewayOrderID = gatewayOrderID
	return nil
}

// MarkPaid commits the booking after a verified payment callback.
func (b *Booking) MarkPaid(gatewayPaymentID string) error {
	if gatewayPaymentID == "" {
		return ErrEmptyPaymentID
	}
	if b.cancelled {
		return ErrAlreadyCancelled
	}
	if b.paymentStatus != PaymentInitiated {
		return ErrNotInitiated
	}

	b.gatewayPaymentID = &gatewayPaymentID
	b.paymentStatus = PaymentPaid
	b.status = StatusConfirmed
	return nil
}

// Cancel transitions a paid booking into the terminal cancelled state with
// its refund outcome. refundID is empty when no gateway refund was issued.
func (b *Booking) Cancel(reason, notes string, refund Money, refundID string, now time.Time) error {
	if b.cancelled {
		return ErrAlreadyCancelled
	}
	if b.paymentStatus != PaymentPaid {
		return ErrNotPaid
	}
	if refund.Rupees() < 0 {
		return ErrNegativeRefund
	}

	actor := CancelledByUser
	b.cancelled = true
	b.cancelledBy = &actor
	b.cancelReason = &reason
	b.cancelNotes = &notes
	b.refundAmount = refund
	b.refundStatus = RefundCompleted
	if refundID != "" {
		b.refundID = &refundID
		b.refundStatus = RefundInitiated
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

// CancelAsDuplicate closes an initiated sibling booking once another booking
// for the same stay has been paid. Never touches paid bookings and issues no
// refund because nothing was ever collected.
func (b *Booking) CancelAsDuplicate(now time.Time) error {
	if b.cancelled {
		return ErrAlreadyCancelled
	}
	if b.paymentStatus != PaymentInitiated {
		return ErrNotInitiated
	}

	actor := CancelledBySystem
	reason := SystemCancelReason
	b.cancelled = true
	b.cancelledBy = &actor
	b.cancelReason = &reason
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.cancelled
}

func (b *Booking) IsPaid() bool {
	return b.paymentStatus == PaymentPaid
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) PropertyID() uuid.UUID      { return b.propertyID }
func (b *Booking) Stay() StayDates            { return b.stay }
func (b *Booking) Guests() GuestCount         { return b.guests }
func (b *Booking) Meals() MealSelection       { return b.meals }
func (b *Booking) Contact() string            { return b.contact }
func (b *Booking) Price() PriceBreakdown      { return b.price }
func (b *Booking) GatewayOrderID() string     { return b.gatewayOrderID }
func (b *Booking) GatewayPaymentID() *string  { return b.gatewayPaymentID }
func (b *Booking) PaymentStatus() PaymentStatus {
	return b.paymentStatus
}
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CancelledBy() *CancelActor {
	return b.cancelledBy
}
func (b *Booking) CancelReason() *string { return b.cancelReason }
func (b *Booking) CancelNotes() *string  { return b.cancelNotes }
func (b *Booking) RefundAmount() Money   { return b.refundAmount }
func (b *Booking) RefundID() *string     { return b.refundID }
func (b *Booking) RefundStatus() RefundStatus {
	return b.refundStatus
}
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
