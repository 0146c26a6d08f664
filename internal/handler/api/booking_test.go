//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/handler/api"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/readmodel"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/pricing/preview", s.handler.PreviewPricing)
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	validationCases := []testCaseBooking{
		{name: "missing field: property_id", mutate: testutil.Field("property_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("check_in", "11-09-2026"), expectCode: http.StatusBadRequest},
		{name: "zero adults", mutate: testutil.Field("adults", 0), expectCode: http.StatusBadRequest},
		{name: "negative children", mutate: testutil.Field("children", -1), expectCode: http.StatusBadRequest},
		{name: "negative meals", mutate: testutil.Field("veg_meals", -2), expectCode: http.StatusBadRequest},
		{name: "contact too short", mutate: testutil.Field("contact_number", "12345"), expectCode: http.StatusBadRequest},
		{name: "contact not numeric", mutate: testutil.Field("contact_number", "call-me-maybe"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with order and pricing", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		rm := builder.NewBookingBuilder().Initiated().BuildRM()

		s.mockUseCase.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(&usecase.CreateOrderResult{
				Order: &usecase.GatewayOrder{
					ID:       rm.GatewayOrderID,
					Amount:   rm.GrandTotal * 100,
					Currency: "INR",
					Receipt:  "rcpt_x",
				},
				Booking: rm,
				Pricing: booking.PriceBreakdown{
					Nights:     rm.TotalNights,
					Subtotal:   rm.Subtotal,
					Tax:        rm.Tax,
					GrandTotal: rm.GrandTotal,
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.CreateOrderResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(rm.GatewayOrderID, resp.GatewayOrderID)
		s.Equal(rm.GrandTotal*100, resp.AmountPaise)
		s.Equal("INR", resp.Currency)
		s.Equal(rm.ID, resp.Booking.ID)
	})

	for _, tc := range validationCases {
		s.Run(tc.name, func() {
			reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
			tc.mutate(reqBody)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	s.Run("unauthorized without token", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("property not found maps to 404", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockUseCase.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("gateway failure maps to 502", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockUseCase.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrOrderCreationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("guest limit maps to 400", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockUseCase.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrGuestLimitExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestPreviewPricing() {
	url := "/pricing/preview"

	s.Run("success: returns breakdown without auth", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		delete(reqBody, "contact_number")

		s.mockUseCase.EXPECT().PreviewPricing(gomock.Any(), gomock.Any()).
			Return(&booking.PriceBreakdown{
				Nights:     2,
				Subtotal:   4500,
				Tax:        450,
				GrandTotal: 4950,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.PricingBreakdownBlock
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(int64(4950), resp.GrandTotal)
	})

	s.Run("invalid stay dates map to 400", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		delete(reqBody, "contact_number")

		s.mockUseCase.EXPECT().PreviewPricing(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidStayDates).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), rm.ID, s.userID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+rm.ID.String(), nil, "token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.BookingResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(rm.ID, resp.ID)
		s.Equal(rm.PropertyName, resp.PropertyName)
	})

	s.Run("invalid id format", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("someone else's booking reads as 404", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), id, s.userID).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("returns caller's bookings", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		list := []*readmodel.BookingListRM{
			{
				ID:            rm.ID,
				PropertyID:    rm.PropertyID,
				PropertyName:  rm.PropertyName,
				CheckIn:       rm.CheckIn,
				CheckOut:      rm.CheckOut,
				GrandTotal:    rm.GrandTotal,
				PaymentStatus: rm.PaymentStatus,
				Status:        rm.Status,
				CreatedAt:     rm.CreatedAt,
			},
		}

		s.mockUseCase.EXPECT().GetUserBookings(gomock.Any(), s.userID).
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")
		s.Equal(http.StatusOK, rec.Code)

		var resp []*resdto.BookingListResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Len(resp, 1)
		s.Equal(rm.ID, resp[0].ID)
	})
}
