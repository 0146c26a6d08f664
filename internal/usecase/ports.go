package usecase

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/sqlc"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// GatewayOrder is a transaction record opened with the payment processor,
// prerequisite to collecting payment. Amounts are in paise.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

type GatewayRefund struct {
	ID     string
	Amount int64
	Status string
}

// PaymentGateway is the injected payment-processor client. Implementations
// must impose their own request timeouts; a timed-out call returns an error
// rather than assuming success.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*GatewayOrder, error)
	Refund(ctx context.Context, paymentID string, amountPaise int64) (*GatewayRefund, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// Notifier delivers best-effort booking notifications. Callers log delivery
// failures and never fail the primary operation on them.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b *readmodel.BookingRM, user *readmodel.UserRM) error
	BookingCancelled(ctx context.Context, b *readmodel.BookingRM, user *readmodel.UserRM, refundAmount int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error)
	FindInitiatedForStay(ctx context.Context, tx sqlc.DBTX, userID, propertyID uuid.UUID, checkIn, checkOut time.Time) (*readmodel.BookingRM, error)
	FindByGatewayOrderID(ctx context.Context, tx sqlc.DBTX, gatewayOrderID string) (*readmodel.BookingRM, error)
	UpdateQuote(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdatePaid(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateCancelled(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	CancelInitiatedSiblings(ctx context.Context, tx sqlc.DBTX, paid *readmodel.BookingRM, cancelledAt time.Time) (int64, error)
}

type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PropertyRM, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
}
