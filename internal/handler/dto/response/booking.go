package response

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	CheckIn      string    `json:"checkIn"`
	CheckOut     string    `json:"checkOut"`
	TotalNights  int       `json:"totalNights"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	VegMeals     int       `json:"vegMeals"`
	NonVegMeals  int       `json:"nonVegMeals"`
	Contact      string    `json:"contactNumber"`

	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grandTotal"`

	GatewayOrderID   string  `json:"gatewayOrderId"`
	GatewayPaymentID *string `json:"gatewayPaymentId,omitempty"`
	PaymentStatus    string  `json:"paymentStatus"`
	Status           string  `json:"status"`

	Cancelled    bool       `json:"cancelled"`
	CancelledBy  *string    `json:"cancelledBy,omitempty"`
	CancelReason *string    `json:"cancelReason,omitempty"`
	RefundAmount int64      `json:"refundAmount"`
	RefundStatus string     `json:"refundStatus"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"propertyId"`
	PropertyName  string    `json:"propertyName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	GrandTotal    int64     `json:"grandTotal"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateOrderResponse carries everything the client checkout flow needs to
// open the gateway payment widget.
type CreateOrderResponse struct {
	Booking        *BookingResponse       `json:"booking"`
	GatewayOrderID string                 `json:"gatewayOrderId"`
	AmountPaise    int64                  `json:"amountPaise"`
	Currency       string                 `json:"currency"`
	Pricing        *PricingBreakdownBlock `json:"pricing"`
}

type PricingBreakdownBlock struct {
	Nights        int   `json:"nights"`
	WeekdayNights int   `json:"weekdayNights"`
	WeekendNights int   `json:"weekendNights"`
	RoomWeekday   int64 `json:"roomWeekday"`
	RoomWeekend   int64 `json:"roomWeekend"`

	ExtraAdults      int   `json:"extraAdults"`
	ExtraChildren    int   `json:"extraChildren"`
	ExtraAdultAmount int64 `json:"extraAdultAmount"`
	ExtraChildAmount int64 `json:"extraChildAmount"`

	MealAmount int64 `json:"mealAmount"`

	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grandTotal"`
}

type CancellationPreviewResponse struct {
	DaysBefore    int   `json:"daysBefore"`
	RefundPercent int   `json:"refundPercent"`
	RefundAmount  int64 `json:"refundAmount"`
}

type CancelBookingResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	PropertyID   uuid.UUID `json:"propertyId"`
	RefundAmount int64     `json:"refundAmount"`
	Status       string    `json:"status"`
}

const dateLayout = "2006-01-02"

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:               rm.ID,
		PropertyID:       rm.PropertyID,
		PropertyName:     rm.PropertyName,
		CheckIn:          rm.CheckIn.Format(dateLayout),
		CheckOut:         rm.CheckOut.Format(dateLayout),
		TotalNights:      rm.TotalNights,
		Adults:           rm.Adults,
		Children:         rm.Children,
		VegMeals:         rm.VegMeals,
		NonVegMeals:      rm.NonVegMeals,
		Contact:          rm.Contact,
		Subtotal:         rm.Subtotal,
		Tax:              rm.Tax,
		GrandTotal:       rm.GrandTotal,
		GatewayOrderID:   rm.GatewayOrderID,
		GatewayPaymentID: rm.GatewayPaymentID,
		PaymentStatus:    rm.PaymentStatus,
		Status:           rm.Status,
		Cancelled:        rm.Cancelled,
		CancelledBy:      rm.CancelledBy,
		CancelReason:     rm.CancelReason,
		RefundAmount:     rm.RefundAmount,
		RefundStatus:     rm.RefundStatus,
		CancelledAt:      rm.CancelledAt,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromBookingListRM(rm *readmodel.BookingListRM) *BookingListResponse {
	return &BookingListResponse{
		ID:            rm.ID,
		PropertyID:    rm.PropertyID,
		PropertyName:  rm.PropertyName,
		CheckIn:       rm.CheckIn.Format(dateLayout),
		CheckOut:      rm.CheckOut.Format(dateLayout),
		GrandTotal:    rm.GrandTotal,
		PaymentStatus: rm.PaymentStatus,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromPriceBreakdown(p *booking.PriceBreakdown) *PricingBreakdownBlock {
	return &PricingBreakdownBlock{
		Nights:           p.Nights,
		WeekdayNights:    p.WeekdayNights,
		WeekendNights:    p.WeekendNights,
		RoomWeekday:      p.RoomWeekday,
		RoomWeekend:      p.RoomWeekend,
		ExtraAdults:      p.ExtraAdults,
		ExtraChildren:    p.ExtraChildren,
		ExtraAdultAmount: p.ExtraAdultAmount,
		ExtraChildAmount: p.ExtraChildAmount,
		MealAmount:       p.MealAmount,
		Subtotal:         p.Subtotal,
		Tax:              p.Tax,
		GrandTotal:       p.GrandTotal,
	}
}

func FromCreateOrderResult(result *usecase.CreateOrderResult) *CreateOrderResponse {
	return &CreateOrderResponse{
		Booking:        FromBookingRM(result.Booking),
		GatewayOrderID: result.Order.ID,
		AmountPaise:    result.Order.Amount,
		Currency:       result.Order.Currency,
		Pricing:        FromPriceBreakdown(&result.Pricing),
	}
}
