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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrAlreadyPaid       = errors.New("booking is already paid")
)

type VerifyPaymentParams struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type PaymentUseCase interface {
	VerifyPayment(ctx context.Context, params VerifyPaymentParams) (*readmodel.BookingRM, error)
}

type paymentUseCaseImpl struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	gateway     PaymentGateway
	notifier    Notifier
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewPaymentUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	gateway PaymentGateway,
	notifier Notifier,
	db *pgxpool.Pool,
	clock clock.Clock,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		notifier:    notifier,
		db:          db,
		clock:       clock,
	}
}

// VerifyPayment authenticates a gateway callback and commits the matching
// booking. The HMAC comparison is the sole authenticity check; nothing else
// in the payload is trusted.
func (u *paymentUseCaseImpl) VerifyPayment(ctx context.Context, params VerifyPaymentParams) (*readmodel.BookingRM, error) {
	if !u.gateway.VerifySignature(params.GatewayOrderID, params.GatewayPaymentID, params.Signature) {
		return nil, ErrSignatureMismatch
	}

	bookingRM, err := u.commitPayment(ctx, params)
	if err != nil {
		return nil, err
	}

	u.notifyConfirmed(ctx, bookingRM)

	return bookingRM, nil
}

// commitPayment marks the booking paid and closes out sibling duplicates in
// one transaction, so a crash cannot leave a paid booking with live
// duplicates.
func (u *paymentUseCaseImpl) commitPayment(ctx context.Context, params VerifyPaymentParams) (*readmodel.BookingRM, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	rm, err := u.bookingRepo.FindByGatewayOrderID(ctx, tx, params.GatewayOrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Gateway retries replay the same callback; seeing the same payment on
	// an already-committed booking is a success, not a conflict.
	if rm.PaymentStatus == booking.PaymentPaid.String() {
		if rm.GatewayPaymentID != nil && *rm.GatewayPaymentID == params.GatewayPaymentID {
			return rm, nil
		}
		return nil, ErrAlreadyPaid
	}

	entity, rehydrateErr := bookingFromRM(rm)
	if rehydrateErr != nil {
		return nil, errs.Mark(rehydrateErr, ErrDatabaseOperationFailed)
	}
	if markErr := entity.MarkPaid(params.GatewayPaymentID); markErr != nil {
		if errors.Is(markErr, booking.ErrAlreadyCancelled) {
			return nil, ErrAlreadyCancelled
		}
		return nil, errs.Mark(markErr, ErrDomainValidationFailed)
	}

	if updateErr := u.bookingRepo.UpdatePaid(ctx, tx, entity); updateErr != nil {
		return nil, errs.Mark(updateErr, ErrDatabaseOperationFailed)
	}

	closed, err := u.bookingRepo.CancelInitiatedSiblings(ctx, tx, rm, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if closed > 0 {
		slog.Info("auto-closed duplicate pending bookings",
			"booking_id", rm.ID, "count", closed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	bookingRM, err := u.bookingRepo.FindByID(ctx, rm.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return bookingRM, nil
}

func (u *paymentUseCaseImpl) notifyConfirmed(ctx context.Context, bookingRM *readmodel.BookingRM) {
	userRM, err := u.userRepo.FindByID(ctx, bookingRM.UserID)
	if err != nil {
		slog.Warn("confirmation notification skipped: user lookup failed",
			"booking_id", bookingRM.ID, "error", err)
		return
	}

	if err := u.notifier.BookingConfirmed(ctx, bookingRM, userRM); err != nil {
		slog.Warn("confirmation notification failed",
			"booking_id", bookingRM.ID, "error", err)
	}
}
