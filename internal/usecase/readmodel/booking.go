package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`

	PropertyName string    `json:"property_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	TotalNights  int       `json:"total_nights"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	VegMeals     int       `json:"veg_meals"`
	NonVegMeals  int       `json:"nonveg_meals"`
	Contact      string    `json:"contact_number"`

	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grand_total"`

	GatewayOrderID   string  `json:"gateway_order_id"`
	GatewayPaymentID *string `json:"gateway_payment_id,omitempty"`
	PaymentStatus    string  `json:"payment_status"`
	Status           string  `json:"status"`

	Cancelled    bool       `json:"cancelled"`
	CancelledBy  *string    `json:"cancelled_by,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	CancelNotes  *string    `json:"cancel_notes,omitempty"`
	RefundAmount int64      `json:"refund_amount"`
	RefundID     *string    `json:"refund_id,omitempty"`
	RefundStatus string     `json:"refund_status"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingListRM struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	GrandTotal   int64     `json:"grand_total"`
	PaymentStatus string   `json:"payment_status"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
