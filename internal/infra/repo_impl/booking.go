package repo_impl

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDForUpdateRow, error)
	GetBookingByGatewayOrderID(ctx context.Context, db sqlc.DBTX, gatewayOrderID string) (sqlc.GetBookingByGatewayOrderIDRow, error)
	GetBookingsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetBookingsByUserIDRow, error)
	GetInitiatedBookingForStay(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInitiatedBookingForStayParams) (sqlc.Bookings, error)
	UpdateBookingQuote(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingQuoteParams) error
	UpdateBookingPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingPaidParams) error
	UpdateBookingCancelled(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingCancelledParams) error
	CancelInitiatedSiblingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelInitiatedSiblingBookingsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries *sqlc.Queries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*readmodel.BookingRM, error) {
	params := sqlc.CreateBookingParams{
		ID:             b.ID(),
		UserID:         b.UserID(),
		PropertyID:     b.PropertyID(),
		CheckIn:        pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:       pgconv.DateToPgtype(b.Stay().CheckOut()),
		TotalNights:    int32(b.Stay().Nights()),
		Adults:         int32(b.Guests().Adults()),
		Children:       int32(b.Guests().Children()),
		VegMeals:       int32(b.Meals().Veg()),
		NonvegMeals:    int32(b.Meals().NonVeg()),
		ContactNumber:  b.Contact(),
		Subtotal:       b.Price().Subtotal,
		Tax:            b.Price().Tax,
		GrandTotal:     b.Price().GrandTotal,
		GatewayOrderID: b.GatewayOrderID(),
		PaymentStatus:  string(b.PaymentStatus()),
		Status:         string(b.Status()),
	}

	result, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	detailRow, err := r.queries.GetBookingByID(ctx, tx, result.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get created booking", err)
	}

	return toBookingRMFromDetailRow(detailRow), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBookingRMFromDetailRow(row), nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*readmodel.BookingRM, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	return toBookingRMFromDetailRow(sqlc.GetBookingByIDRow(row)), nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	rows, err := r.queries.GetBookingsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}

	result := make([]*readmodel.BookingListRM, len(rows))
	for i, row := range rows {
		result[i] = &readmodel.BookingListRM{
			ID:            row.ID,
			PropertyID:    row.PropertyID,
			PropertyName:  row.PropertyName,
			CheckIn:       pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:      pgconv.DateFromPgtype(row.CheckOut),
			GrandTotal:    row.GrandTotal,
			PaymentStatus: row.PaymentStatus,
			Status:        row.Status,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *BookingRepository) FindInitiatedForStay(ctx context.Context, tx sqlc.DBTX, userID, propertyID uuid.UUID, checkIn, checkOut time.Time) (*readmodel.BookingRM, error) {
	params := sqlc.GetInitiatedBookingForStayParams{
		UserID:     userID,
		PropertyID: propertyID,
		CheckIn:    pgconv.DateToPgtype(checkIn),
		CheckOut:   pgconv.DateToPgtype(checkOut),
	}

	row, err := r.queries.GetInitiatedBookingForStay(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no initiated booking for stay", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find initiated booking for stay", err)
	}

	return toBookingRMFromModel(row), nil
}

func (r *BookingRepository) FindByGatewayOrderID(ctx context.Context, tx sqlc.DBTX, gatewayOrderID string) (*readmodel.BookingRM, error) {
	row, err := r.queries.GetBookingByGatewayOrderID(ctx, tx, gatewayOrderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for gateway order", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by gateway order ID", err)
	}

	return toBookingRMFromDetailRow(sqlc.GetBookingByIDRow(row)), nil
}

func (r *BookingRepository) UpdateQuote(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingQuoteParams{
		ID:             b.ID(),
		Adults:         int32(b.Guests().Adults()),
		Children:       int32(b.Guests().Children()),
		VegMeals:       int32(b.Meals().Veg()),
		NonvegMeals:    int32(b.Meals().NonVeg()),
		ContactNumber:  b.Contact(),
		Subtotal:       b.Price().Subtotal,
		Tax:            b.Price().Tax,
		GrandTotal:     b.Price().GrandTotal,
		GatewayOrderID: b.GatewayOrderID(),
	}

	if err := r.queries.UpdateBookingQuote(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update booking quote", err)
	}
	return nil
}

func (r *BookingRepository) UpdatePaid(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingPaidParams{
		ID:               b.ID(),
		GatewayPaymentID: pgconv.StringPtrToPgtype(b.GatewayPaymentID()),
	}

	if err := r.queries.UpdateBookingPaid(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark booking paid", err)
	}
	return nil
}

func (r *BookingRepository) UpdateCancelled(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	var cancelledBy *string
	if actor := b.CancelledBy(); actor != nil {
		s := string(*actor)
		cancelledBy = &s
	}

	params := sqlc.UpdateBookingCancelledParams{
		ID:           b.ID(),
		CancelledBy:  pgconv.StringPtrToPgtype(cancelledBy),
		CancelReason: pgconv.StringPtrToPgtype(b.CancelReason()),
		CancelNotes:  pgconv.StringPtrToPgtype(b.CancelNotes()),
		RefundAmount: b.RefundAmount().Rupees(),
		RefundID:     pgconv.StringPtrToPgtype(b.RefundID()),
		RefundStatus: string(b.RefundStatus()),
		CancelledAt:  pgconv.TimePtrToPgtype(b.CancelledAt()),
	}

	if err := r.queries.UpdateBookingCancelled(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	return nil
}

func (r *BookingRepository) CancelInitiatedSiblings(ctx context.Context, tx sqlc.DBTX, paid *readmodel.BookingRM, cancelledAt time.Time) (int64, error) {
	params := sqlc.CancelInitiatedSiblingBookingsParams{
		UserID:       paid.UserID,
		PropertyID:   paid.PropertyID,
		CheckIn:      pgconv.DateToPgtype(paid.CheckIn),
		CheckOut:     pgconv.DateToPgtype(paid.CheckOut),
		ExcludeID:    paid.ID,
		CancelReason: booking.SystemCancelReason,
		CancelledAt:  pgconv.TimeToPgtype(cancelledAt),
	}

	closed, err := r.queries.CancelInitiatedSiblingBookings(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel sibling bookings", err)
	}
	return closed, nil
}

func toBookingRMFromDetailRow(row sqlc.GetBookingByIDRow) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:               row.ID,
		UserID:           row.UserID,
		PropertyID:       row.PropertyID,
		PropertyName:     row.PropertyName,
		CheckIn:          pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:         pgconv.DateFromPgtype(row.CheckOut),
		TotalNights:      int(row.TotalNights),
		Adults:           int(row.Adults),
		Children:         int(row.Children),
		VegMeals:         int(row.VegMeals),
		NonVegMeals:      int(row.NonvegMeals),
		Contact:          row.ContactNumber,
		Subtotal:         row.Subtotal,
		Tax:              row.Tax,
		GrandTotal:       row.GrandTotal,
		GatewayOrderID:   row.GatewayOrderID,
		GatewayPaymentID: pgconv.StringPtrFromPgtype(row.GatewayPaymentID),
		PaymentStatus:    row.PaymentStatus,
		Status:           row.Status,
		Cancelled:        row.Cancelled,
		CancelledBy:      pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancelReason:     pgconv.StringPtrFromPgtype(row.CancelReason),
		CancelNotes:      pgconv.StringPtrFromPgtype(row.CancelNotes),
		RefundAmount:     row.RefundAmount,
		RefundID:         pgconv.StringPtrFromPgtype(row.RefundID),
		RefundStatus:     row.RefundStatus,
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBookingRMFromModel(row sqlc.Bookings) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:               row.ID,
		UserID:           row.UserID,
		PropertyID:       row.PropertyID,
		CheckIn:          pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:         pgconv.DateFromPgtype(row.CheckOut),
		TotalNights:      int(row.TotalNights),
		Adults:           int(row.Adults),
		Children:         int(row.Children),
		VegMeals:         int(row.VegMeals),
		NonVegMeals:      int(row.NonvegMeals),
		Contact:          row.ContactNumber,
		Subtotal:         row.Subtotal,
		Tax:              row.Tax,
		GrandTotal:       row.GrandTotal,
		GatewayOrderID:   row.GatewayOrderID,
		GatewayPaymentID: pgconv.StringPtrFromPgtype(row.GatewayPaymentID),
		PaymentStatus:    row.PaymentStatus,
		Status:           row.Status,
		Cancelled:        row.Cancelled,
		CancelledBy:      pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancelReason:     pgconv.StringPtrFromPgtype(row.CancelReason),
		CancelNotes:      pgconv.StringPtrFromPgtype(row.CancelNotes),
		RefundAmount:     row.RefundAmount,
		RefundID:         pgconv.StringPtrFromPgtype(row.RefundID),
		RefundStatus:     row.RefundStatus,
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
