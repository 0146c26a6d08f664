//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockPaymentUseCase
	handler     *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockPaymentUseCase(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockUseCase)

	s.router.POST("/bookings/verify-payment", s.handler.VerifyPayment)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func verifyBody() map[string]any {
	return map[string]any{
		"gateway_order_id":   "order_test123",
		"gateway_payment_id": "pay_test123",
		"signature":          "deadbeef",
	}
}

func (s *PaymentHandlerTestSuite) TestVerifyPayment() {
	url := "/bookings/verify-payment"

	s.Run("success: returns confirmed booking", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		s.mockUseCase.EXPECT().VerifyPayment(gomock.Any(), usecase.VerifyPaymentParams{
			GatewayOrderID:   "order_test123",
			GatewayPaymentID: "pay_test123",
			Signature:        "deadbeef",
		}).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, verifyBody(), "token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.BookingResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("paid", resp.PaymentStatus)
		s.Equal("confirmed", resp.Status)
	})

	missing := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing order id", mutate: testutil.Field("gateway_order_id", nil)},
		{name: "missing payment id", mutate: testutil.Field("gateway_payment_id", nil)},
		{name: "missing signature", mutate: testutil.Field("signature", nil)},
	}

	for _, tc := range missing {
		s.Run(tc.name, func() {
			body := verifyBody()
			tc.mutate(body)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}

	s.Run("signature mismatch maps to 401", func() {
		s.mockUseCase.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrSignatureMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, verifyBody(), "token")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("unknown order maps to 404", func() {
		s.mockUseCase.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, verifyBody(), "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("cancelled booking maps to 409", func() {
		s.mockUseCase.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, verifyBody(), "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
