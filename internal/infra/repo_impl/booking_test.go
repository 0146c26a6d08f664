//go:build unit

package repo_impl

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetBookingByIDRow), args.Error(1)
}

func (m *MockBookingQueries) GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDForUpdateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetBookingByIDForUpdateRow), args.Error(1)
}

func (m *MockBookingQueries) GetBookingByGatewayOrderID(ctx context.Context, db sqlc.DBTX, gatewayOrderID string) (sqlc.GetBookingByGatewayOrderIDRow, error) {
	args := m.Called(ctx, db, gatewayOrderID)
	return args.Get(0).(sqlc.GetBookingByGatewayOrderIDRow), args.Error(1)
}

func (m *MockBookingQueries) GetBookingsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetBookingsByUserIDRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.GetBookingsByUserIDRow), args.Error(1)
}

func (m *MockBookingQueries) GetInitiatedBookingForStay(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInitiatedBookingForStayParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingQueries) UpdateBookingQuote(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingQuoteParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBookingQueries) UpdateBookingPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingPaidParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBookingQueries) UpdateBookingCancelled(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingCancelledParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBookingQueries) CancelInitiatedSiblingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelInitiatedSiblingBookingsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func detailRow(id uuid.UUID) sqlc.GetBookingByIDRow {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return sqlc.GetBookingByIDRow{
		ID:             id,
		UserID:         uuid.New(),
		PropertyID:     uuid.New(),
		CheckIn:        pgtype.Date{Time: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC), Valid: true},
		CheckOut:       pgtype.Date{Time: time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), Valid: true},
		TotalNights:    2,
		Adults:         2,
		ContactNumber:  "+919876543210",
		Subtotal:       4500,
		Tax:            450,
		GrandTotal:     4950,
		GatewayOrderID: "order_abc",
		PaymentStatus:  "initiated",
		Status:         "pending",
		RefundStatus:   "none",
		CreatedAt:      now,
		UpdatedAt:      now,
		PropertyName:   "Seaside Villa",
	}
}

func TestBookingFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns read model with property name", func(t *testing.T) {
		mockQueries := new(MockBookingQueries)
		repo := &BookingRepository{queries: mockQueries}

		id := uuid.New()
		mockQueries.On("GetBookingByID", ctx, nil, id).Return(detailRow(id), nil)

		rm, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, rm.ID)
		assert.Equal(t, "Seaside Villa", rm.PropertyName)
		assert.Equal(t, 2, rm.TotalNights)
		assert.Nil(t, rm.GatewayPaymentID)
	})

	t.Run("maps missing row to not found kind", func(t *testing.T) {
		mockQueries := new(MockBookingQueries)
		repo := &BookingRepository{queries: mockQueries}

		id := uuid.New()
		mockQueries.On("GetBookingByID", ctx, nil, id).Return(sqlc.GetBookingByIDRow{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingCreateDuplicateKey(t *testing.T) {
	ctx := context.Background()
	mockQueries := new(MockBookingQueries)
	repo := &BookingRepository{queries: mockQueries}

	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	mockQueries.On("CreateBooking", ctx, nil, mock.Anything).Return(sqlc.Bookings{}, dup)

	_, err := repo.Create(ctx, nil, testBookingEntity(t))
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func testBookingEntity(t *testing.T) *booking.Booking {
	t.Helper()

	guests, err := booking.NewGuestCount(2, 0)
	require.NoError(t, err)
	meals, err := booking.NewMealSelection(0, 0)
	require.NoError(t, err)

	return booking.NewBooking(
		uuid.New(), uuid.New(),
		booking.ReconstructStayDates(
			time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		),
		guests,
		meals,
		"+919876543210",
		booking.PriceBreakdown{Nights: 2, Subtotal: 4500, Tax: 450, GrandTotal: 4950},
		"order_abc",
	)
}

func TestCancelInitiatedSiblings(t *testing.T) {
	ctx := context.Background()
	mockQueries := new(MockBookingQueries)
	repo := &BookingRepository{queries: mockQueries}

	id := uuid.New()
	mockQueries.On("GetBookingByID", ctx, nil, id).Return(detailRow(id), nil)

	rm, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	mockQueries.On("CancelInitiatedSiblingBookings", ctx, nil, mock.MatchedBy(func(arg sqlc.CancelInitiatedSiblingBookingsParams) bool {
		return arg.ExcludeID == id && arg.UserID == rm.UserID
	})).Return(int64(2), nil)

	closed, err := repo.CancelInitiatedSiblings(ctx, nil, rm, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), closed)
}
