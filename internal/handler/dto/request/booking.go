package request

import (
	"regexp"
	"strings"
	"time"

	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var contactPattern = regexp.MustCompile(`^\+?[0-9]{10,14}$`)

// RegisterValidators installs custom binding rules on gin's validator engine.
// Call once at startup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
			return contactPattern.MatchString(fl.Field().String())
		})
	}
}

type CreateBookingRequest struct {
	PropertyID  uuid.UUID `json:"property_id" binding:"required"`
	CheckIn     string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut    string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Adults      int       `json:"adults" binding:"required,min=1"`
	Children    int       `json:"children" binding:"min=0"`
	VegMeals    int       `json:"veg_meals" binding:"min=0"`
	NonVegMeals int       `json:"nonveg_meals" binding:"min=0"`
	Contact     string    `json:"contact_number" binding:"required,contact"`
}

func (r CreateBookingRequest) ToParams(userID uuid.UUID) usecase.CreateOrderParams {
	checkIn, _ := time.Parse(dateLayout, r.CheckIn)
	checkOut, _ := time.Parse(dateLayout, r.CheckOut)

	return usecase.CreateOrderParams{
		UserID:      userID,
		PropertyID:  r.PropertyID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      r.Adults,
		Children:    r.Children,
		VegMeals:    r.VegMeals,
		NonVegMeals: r.NonVegMeals,
		Contact:     strings.TrimSpace(r.Contact),
	}
}

// PricingPreviewRequest carries the same stay parameters as a booking but
// needs no contact number; nothing is persisted.
type PricingPreviewRequest struct {
	PropertyID  uuid.UUID `json:"property_id" binding:"required"`
	CheckIn     string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut    string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Adults      int       `json:"adults" binding:"required,min=1"`
	Children    int       `json:"children" binding:"min=0"`
	VegMeals    int       `json:"veg_meals" binding:"min=0"`
	NonVegMeals int       `json:"nonveg_meals" binding:"min=0"`
}

func (r PricingPreviewRequest) ToParams(userID uuid.UUID) usecase.CreateOrderParams {
	checkIn, _ := time.Parse(dateLayout, r.CheckIn)
	checkOut, _ := time.Parse(dateLayout, r.CheckOut)

	return usecase.CreateOrderParams{
		UserID:      userID,
		PropertyID:  r.PropertyID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      r.Adults,
		Children:    r.Children,
		VegMeals:    r.VegMeals,
		NonVegMeals: r.NonVegMeals,
	}
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}

func (r VerifyPaymentRequest) ToParams() usecase.VerifyPaymentParams {
	return usecase.VerifyPaymentParams{
		GatewayOrderID:   r.GatewayOrderID,
		GatewayPaymentID: r.GatewayPaymentID,
		Signature:        r.Signature,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
	Notes  string `json:"notes" binding:"max=1000"`
}

func (r CancelBookingRequest) ToParams(bookingID, userID uuid.UUID) usecase.CancelBookingParams {
	return usecase.CancelBookingParams{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    strings.TrimSpace(r.Reason),
		Notes:     strings.TrimSpace(r.Notes),
	}
}
