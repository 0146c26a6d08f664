//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"
	"stayhub/tests/common/httptest"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancellationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockCancellationUseCase
	handler     *api.CancellationHandler
	userID      uuid.UUID
}

func (s *CancellationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockCancellationUseCase(s.mockCtrl)
	s.handler = api.NewCancellationHandler(s.mockUseCase)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/bookings/:id/cancellation-preview", authMiddleware, s.handler.PreviewCancellation)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
}

func (s *CancellationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCancellationHandlerSuite(t *testing.T) {
	suite.Run(t, new(CancellationHandlerTestSuite))
}

func (s *CancellationHandlerTestSuite) TestPreviewCancellation() {
	s.Run("success: shows tiered refund", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().PreviewCancellation(gomock.Any(), id, s.userID).
			Return(&usecase.CancellationPreview{
				DaysBefore:    5,
				RefundPercent: 50,
				RefundAmount:  2475,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/cancellation-preview", nil, "token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.CancellationPreviewResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(5, resp.DaysBefore)
		s.Equal(50, resp.RefundPercent)
		s.Equal(int64(2475), resp.RefundAmount)
	})

	s.Run("unpaid booking maps to 409", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().PreviewCancellation(gomock.Any(), id, s.userID).
			Return(nil, usecase.ErrBookingNotPaid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/cancellation-preview", nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *CancellationHandlerTestSuite) TestCancelBooking() {
	body := map[string]any{
		"reason": "change of plans",
		"notes":  "rebooking next month",
	}

	s.Run("success: cancels and reports refund", func() {
		id := uuid.New()
		propertyID := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), usecase.CancelBookingParams{
			BookingID: id,
			UserID:    s.userID,
			Reason:    "change of plans",
			Notes:     "rebooking next month",
		}).Return(&usecase.CancelBookingResult{RefundAmount: 2475, PropertyID: propertyID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", body, "token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.CancelBookingResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(id, resp.BookingID)
		s.Equal(propertyID, resp.PropertyID)
		s.Equal(int64(2475), resp.RefundAmount)
		s.Equal("cancelled", resp.Status)
	})

	s.Run("missing reason maps to 400", func() {
		id := uuid.New()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", map[string]any{"notes": "n"}, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("already cancelled maps to 409", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", body, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("refund failure maps to 502 and leaves booking intact", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrCancellationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", body, "token")
		s.Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("invalid id format", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/nope/cancel", body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
