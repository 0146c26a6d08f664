package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotPaid     = errors.New("booking has not been paid")
	ErrCancellationFailed = errors.New("cancellation failed")
)

type CancellationPreview struct {
	DaysBefore    int   `json:"days_before"`
	RefundPercent int   `json:"refund_percent"`
	RefundAmount  int64 `json:"refund_amount"`
}

type CancelBookingParams struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Reason    string
	Notes     string
}

type CancelBookingResult struct {
	RefundAmount int64     `json:"refund_amount"`
	PropertyID   uuid.UUID `json:"property_id"`
}

type CancellationUseCase interface {
	PreviewCancellation(ctx context.Context, bookingID, userID uuid.UUID) (*CancellationPreview, error)
	CancelBooking(ctx context.Context, params CancelBookingParams) (*CancelBookingResult, error)
}

type cancellationUseCaseImpl struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	userRepo     UserRepository
	gateway      PaymentGateway
	notifier     Notifier
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewCancellationUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	userRepo UserRepository,
	gateway PaymentGateway,
	notifier Notifier,
	db *pgxpool.Pool,
	clock clock.Clock,
) CancellationUseCase {
	return &cancellationUseCaseImpl{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		notifier:     notifier,
		db:           db,
		clock:        clock,
	}
}

func (u *cancellationUseCaseImpl) PreviewCancellation(ctx context.Context, bookingID, userID uuid.UUID) (*CancellationPreview, error) {
	bookingRM, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := validateCancellable(bookingRM, userID); err != nil {
		return nil, err
	}

	preview, err := u.computeRefund(ctx, bookingRM)
	if err != nil {
		return nil, err
	}

	return preview, nil
}

// CancelBooking re-validates the preview preconditions, recomputes the refund
// (a client-supplied amount is never trusted), and issues the gateway refund
// before any mutation: a failed refund call must never leave a booking
// falsely marked cancelled.
func (u *cancellationUseCaseImpl) CancelBooking(ctx context.Context, params CancelBookingParams) (*CancelBookingResult, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// Row lock keeps a concurrent cancel of the same booking from issuing
	// a second refund.
	bookingRM, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := validateCancellable(bookingRM, params.UserID); err != nil {
		return nil, err
	}

	preview, err := u.computeRefund(ctx, bookingRM)
	if err != nil {
		return nil, err
	}

	var refundID string
	if preview.RefundAmount > 0 && bookingRM.GatewayPaymentID != nil {
		refund, refundErr := u.gateway.Refund(ctx, *bookingRM.GatewayPaymentID, booking.NewMoney(preview.RefundAmount).Paise())
		if refundErr != nil {
			return nil, errs.Mark(refundErr, ErrCancellationFailed)
		}
		refundID = refund.ID
	}

	entity, rehydrateErr := bookingFromRM(bookingRM)
	if rehydrateErr != nil {
		return nil, errs.Mark(rehydrateErr, ErrDatabaseOperationFailed)
	}
	if cancelErr := entity.Cancel(params.Reason, params.Notes, booking.NewMoney(preview.RefundAmount), refundID, u.clock.Now()); cancelErr != nil {
		if errors.Is(cancelErr, booking.ErrAlreadyCancelled) {
			return nil, ErrAlreadyCancelled
		}
		return nil, errs.Mark(cancelErr, ErrDomainValidationFailed)
	}

	if updateErr := u.bookingRepo.UpdateCancelled(ctx, tx, entity); updateErr != nil {
		return nil, errs.Mark(updateErr, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	u.notifyCancelled(ctx, bookingRM, preview.RefundAmount)

	return &CancelBookingResult{
		RefundAmount: preview.RefundAmount,
		PropertyID:   bookingRM.PropertyID,
	}, nil
}

func (u *cancellationUseCaseImpl) computeRefund(ctx context.Context, bookingRM *readmodel.BookingRM) (*CancellationPreview, error) {
	propertyRM, err := u.propertyRepo.FindByID(ctx, bookingRM.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	stay := booking.ReconstructStayDates(bookingRM.CheckIn, bookingRM.CheckOut)
	daysBefore := stay.DaysBefore(u.clock.Now())
	amount, percent := propertyRM.Policy.RefundAmountFor(bookingRM.GrandTotal, daysBefore)

	return &CancellationPreview{
		DaysBefore:    daysBefore,
		RefundPercent: percent,
		RefundAmount:  amount,
	}, nil
}

func validateCancellable(bookingRM *readmodel.BookingRM, userID uuid.UUID) error {
	if bookingRM.UserID != userID {
		return ErrBookingNotFound
	}
	if bookingRM.Cancelled {
		return ErrAlreadyCancelled
	}
	if bookingRM.PaymentStatus != booking.PaymentPaid.String() {
		return ErrBookingNotPaid
	}
	return nil
}

func (u *cancellationUseCaseImpl) notifyCancelled(ctx context.Context, bookingRM *readmodel.BookingRM, refundAmount int64) {
	userRM, err := u.userRepo.FindByID(ctx, bookingRM.UserID)
	if err != nil {
		slog.Warn("cancellation notification skipped: user lookup failed",
			"booking_id", bookingRM.ID, "error", err)
		return
	}

	if err := u.notifier.BookingCancelled(ctx, bookingRM, userRM, refundAmount); err != nil {
		slog.Warn("cancellation notification failed",
			"booking_id", bookingRM.ID, "error", err)
	}
}
