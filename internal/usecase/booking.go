package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

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
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidStayDates   = errors.New("invalid stay dates")
	ErrGuestLimitExceeded = errors.New("guest count exceeds property capacity")
	ErrInvalidMealCount   = errors.New("meal count must be between 1 and total guests")
	ErrInvalidAmount      = errors.New("computed amount is not positive")
	ErrOrderCreationFailed = errors.New("order creation failed")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

const orderCurrency = "INR"

type CreateOrderParams struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	VegMeals    int
	NonVegMeals int
	Contact     string
}

type CreateOrderResult struct {
	Order   *GatewayOrder
	Booking *readmodel.BookingRM
	Pricing booking.PriceBreakdown
}

type BookingUseCase interface {
	PreviewPricing(ctx context.Context, params CreateOrderParams) (*booking.PriceBreakdown, error)
	CreateOrder(ctx context.Context, params CreateOrderParams) (*CreateOrderResult, error)
	GetBooking(ctx context.Context, id, userID uuid.UUID) (*readmodel.BookingRM, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	gateway      PaymentGateway
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	gateway PaymentGateway,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		gateway:      gateway,
		db:           db,
		clock:        clock,
	}
}

func (u *bookingUseCaseImpl) PreviewPricing(ctx context.Context, params CreateOrderParams) (*booking.PriceBreakdown, error) {
	propertyRM, err := u.validateAndGetProperty(ctx, params.PropertyID)
	if err != nil {
		return nil, err
	}

	stay, guests, meals, err := u.validateStayRequest(params, propertyRM)
	if err != nil {
		return nil, err
	}

	quote, err := booking.CalculateQuote(toPricingConfig(propertyRM), stay, guests, meals)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayDates)
	}

	return &quote, nil
}

func (u *bookingUseCaseImpl) CreateOrder(ctx context.Context, params CreateOrderParams) (*CreateOrderResult, error) {
	propertyRM, err := u.validateAndGetProperty(ctx, params.PropertyID)
	if err != nil {
		return nil, err
	}

	stay, guests, meals, err := u.validateStayRequest(params, propertyRM)
	if err != nil {
		return nil, err
	}

	quote, err := booking.CalculateQuote(toPricingConfig(propertyRM), stay, guests, meals)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayDates)
	}
	if quote.GrandTotal <= 0 {
		return nil, ErrInvalidAmount
	}

	order, err := u.gateway.CreateOrder(ctx, booking.NewMoney(quote.GrandTotal).Paise(), orderCurrency, newReceipt())
	if err != nil {
		return nil, errs.Mark(err, ErrOrderCreationFailed)
	}

	bookingRM, err := u.persistOrder(ctx, params, stay, guests, meals, quote, order.ID)
	if err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		Order:   order,
		Booking: bookingRM,
		Pricing: quote,
	}, nil
}

// persistOrder reuses a still-initiated booking for the same stay or creates
// a new one, inside a single transaction. The row lock (and the partial
// unique index on initiated stays) closes the lookup-then-write race between
// concurrent order attempts.
func (u *bookingUseCaseImpl) persistOrder(
	ctx context.Context,
	params CreateOrderParams,
	stay booking.StayDates,
	guests booking.GuestCount,
	meals booking.MealSelection,
	quote booking.PriceBreakdown,
	gatewayOrderID string,
) (*readmodel.BookingRM, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	existing, err := u.bookingRepo.FindInitiatedForStay(ctx, tx, params.UserID, params.PropertyID, stay.CheckIn(), stay.CheckOut())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var bookingRM *readmodel.BookingRM
	if existing != nil {
		entity, rehydrateErr := bookingFromRM(existing)
		if rehydrateErr != nil {
			return nil, errs.Mark(rehydrateErr, ErrDatabaseOperationFailed)
		}
		if refreshErr := entity.RefreshQuote(quote, guests, meals, params.Contact, gatewayOrderID); refreshErr != nil {
			return nil, errs.Mark(refreshErr, ErrDomainValidationFailed)
		}
		if updateErr := u.bookingRepo.UpdateQuote(ctx, tx, entity); updateErr != nil {
			return nil, errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		bookingRM, err = u.bookingRepo.FindByIDForUpdate(ctx, tx, entity.ID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	} else {
		entity := booking.NewBooking(
			params.UserID, params.PropertyID,
			stay, guests, meals,
			params.Contact,
			quote,
			gatewayOrderID,
		)
		bookingRM, err = u.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Lost the create race: another request inserted the
				// initiated row after our lookup. The failed insert
				// aborted this transaction, so retry the reuse path in
				// a fresh one.
				if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
					return nil, errs.Mark(rollbackErr, ErrDatabaseOperationFailed)
				}
				return u.reuseAfterConflict(ctx, params, stay, guests, meals, quote, gatewayOrderID)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return bookingRM, nil
}

func (u *bookingUseCaseImpl) reuseAfterConflict(
	ctx context.Context,
	params CreateOrderParams,
	stay booking.StayDates,
	guests booking.GuestCount,
	meals booking.MealSelection,
	quote booking.PriceBreakdown,
	gatewayOrderID string,
) (*readmodel.BookingRM, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	existing, err := u.bookingRepo.FindInitiatedForStay(ctx, tx, params.UserID, params.PropertyID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, rehydrateErr := bookingFromRM(existing)
	if rehydrateErr != nil {
		return nil, errs.Mark(rehydrateErr, ErrDatabaseOperationFailed)
	}
	if refreshErr := entity.RefreshQuote(quote, guests, meals, params.Contact, gatewayOrderID); refreshErr != nil {
		return nil, errs.Mark(refreshErr, ErrDomainValidationFailed)
	}
	if err := u.bookingRepo.UpdateQuote(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookingRM, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return bookingRM, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id, userID uuid.UUID) (*readmodel.BookingRM, error) {
	bookingRM, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	// Ownership is part of "found": other users' bookings do not exist
	// from the caller's point of view.
	if bookingRM.UserID != userID {
		return nil, ErrBookingNotFound
	}

	return bookingRM, nil
}

func (u *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	bookings, err := u.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user bookings")
	}

	return bookings, nil
}

func (u *bookingUseCaseImpl) validateAndGetProperty(ctx context.Context, propertyID uuid.UUID) (*readmodel.PropertyRM, error) {
	propertyRM, err := u.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}

	return propertyRM, nil
}

// validateStayRequest checks dates, guest capacity, then meal bounds, in
// that order. Each failure maps to a distinct sentinel.
func (u *bookingUseCaseImpl) validateStayRequest(
	params CreateOrderParams,
	propertyRM *readmodel.PropertyRM,
) (booking.StayDates, booking.GuestCount, booking.MealSelection, error) {
	var (
		zeroStay   booking.StayDates
		zeroGuests booking.GuestCount
		zeroMeals  booking.MealSelection
	)

	stay, err := booking.NewStayDates(params.CheckIn, params.CheckOut, u.clock.Now())
	if err != nil {
		return zeroStay, zeroGuests, zeroMeals, errs.Mark(err, ErrInvalidStayDates)
	}

	guests, err := booking.NewGuestCount(params.Adults, params.Children)
	if err != nil {
		return zeroStay, zeroGuests, zeroMeals, errs.Mark(err, ErrGuestLimitExceeded)
	}
	if guests.Total() > int(propertyRM.MaxGuests) {
		return zeroStay, zeroGuests, zeroMeals, ErrGuestLimitExceeded
	}

	meals, err := booking.NewMealSelection(params.VegMeals, params.NonVegMeals)
	if err != nil {
		return zeroStay, zeroGuests, zeroMeals, errs.Mark(err, ErrInvalidMealCount)
	}
	if meals.IsRequested() && meals.Total() > guests.Total() {
		return zeroStay, zeroGuests, zeroMeals, ErrInvalidMealCount
	}

	return stay, guests, meals, nil
}

func newReceipt() string {
	return "rcpt_" + uuid.NewString()
}
