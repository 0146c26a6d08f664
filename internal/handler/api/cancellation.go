package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CancellationHandler struct {
	cancellationUseCase usecase.CancellationUseCase
}

func NewCancellationHandler(cancellationUseCase usecase.CancellationUseCase) *CancellationHandler {
	return &CancellationHandler{
		cancellationUseCase: cancellationUseCase,
	}
}

// @Summary Preview cancellation
// @Description Show the refund a cancellation would produce right now, without cancelling
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancellationPreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancellation-preview [get]
func (h *CancellationHandler) PreviewCancellation(c *gin.Context) {
	userID, bookingID, ok := h.callerAndBooking(c)
	if !ok {
		return
	}

	preview, err := h.cancellationUseCase.PreviewCancellation(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.respondCancelError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.CancellationPreviewResponse{
		DaysBefore:    preview.DaysBefore,
		RefundPercent: preview.RefundPercent,
		RefundAmount:  preview.RefundAmount,
	})
}

// @Summary Cancel booking
// @Description Cancel a paid booking and initiate the tiered refund
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *CancellationHandler) CancelBooking(c *gin.Context) {
	userID, bookingID, ok := h.callerAndBooking(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cancellationUseCase.CancelBooking(c.Request.Context(), req.ToParams(bookingID, userID))
	if err != nil {
		h.respondCancelError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.CancelBookingResponse{
		BookingID:    bookingID,
		PropertyID:   result.PropertyID,
		RefundAmount: result.RefundAmount,
		Status:       "cancelled",
	})
}

func (h *CancellationHandler) callerAndBooking(c *gin.Context) (userID, bookingID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, bookingID, true
}

func (h *CancellationHandler) respondCancelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, usecase.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already cancelled",
		})
	case errors.Is(err, usecase.ErrBookingNotPaid):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Only paid bookings can be cancelled",
		})
	case errors.Is(err, usecase.ErrCancellationFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Refund could not be initiated, booking left unchanged",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
