//go:build unit

package builder

import (
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// BookingBuilder produces a consistent paid-two-night stay by default:
// Fri 2026-09-11 to Sun 2026-09-13, one weekday and one weekend night at the
// default property rates, flat 10% tax.
type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PropertyID     uuid.UUID
	PropertyName   string
	CheckIn        time.Time
	CheckOut       time.Time
	Adults         int
	Children       int
	VegMeals       int
	NonVegMeals    int
	Contact        string
	Subtotal       int64
	Tax            int64
	GrandTotal     int64
	GatewayOrderID string
	PaymentID      *string
	PaymentStatus  string
	Status         string
	Cancelled      bool
	RefundAmount   int64
	RefundStatus   string
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	paymentID := "pay_test123"
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		PropertyID:     uuid.New(),
		PropertyName:   "Seaside Villa",
		CheckIn:        time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Adults:         2,
		Children:       0,
		VegMeals:       0,
		NonVegMeals:    0,
		Contact:        "+919876543210",
		Subtotal:       4500,
		Tax:            450,
		GrandTotal:     4950,
		GatewayOrderID: "order_test123",
		PaymentID:      &paymentID,
		PaymentStatus:  "paid",
		Status:         "confirmed",
		Cancelled:      false,
		RefundAmount:   0,
		RefundStatus:   "none",
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Initiated() *BookingBuilder {
	b.PaymentID = nil
	b.PaymentStatus = "initiated"
	b.Status = "pending"
	return b
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &readmodel.BookingRM{
		ID:               b.ID,
		UserID:           b.UserID,
		PropertyID:       b.PropertyID,
		PropertyName:     b.PropertyName,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		TotalNights:      nights,
		Adults:           b.Adults,
		Children:         b.Children,
		VegMeals:         b.VegMeals,
		NonVegMeals:      b.NonVegMeals,
		Contact:          b.Contact,
		Subtotal:         b.Subtotal,
		Tax:              b.Tax,
		GrandTotal:       b.GrandTotal,
		GatewayOrderID:   b.GatewayOrderID,
		GatewayPaymentID: b.PaymentID,
		PaymentStatus:    b.PaymentStatus,
		Status:           b.Status,
		Cancelled:        b.Cancelled,
		RefundAmount:     b.RefundAmount,
		RefundStatus:     b.RefundStatus,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

// BuildCreateRequestDTO returns the JSON body a client would post to open a
// booking order, as a mutable map for validation boundary tests.
func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"property_id":    b.PropertyID.String(),
		"check_in":       b.CheckIn.Format("2006-01-02"),
		"check_out":      b.CheckOut.Format("2006-01-02"),
		"adults":         b.Adults,
		"children":       b.Children,
		"veg_meals":      b.VegMeals,
		"nonveg_meals":   b.NonVegMeals,
		"contact_number": b.Contact,
	}
}

// PropertyBuilder mirrors the default rate card used across the unit tests.
type PropertyBuilder struct {
	ID             uuid.UUID
	Name           string
	BaseGuests     int32
	MaxGuests      int32
	WeekdayRate    int64
	WeekendRate    int64
	ExtraAdultRate int64
	ExtraChildRate int64
	VegMealRate    int64
	NonVegMealRate int64
	Policy         property.CancellationPolicy
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:             uuid.New(),
		Name:           "Seaside Villa",
		BaseGuests:     2,
		MaxGuests:      6,
		WeekdayRate:    2000,
		WeekendRate:    2500,
		ExtraAdultRate: 500,
		ExtraChildRate: 300,
		VegMealRate:    250,
		NonVegMealRate: 350,
		Policy: property.CancellationPolicy{
			{MinDaysBefore: 7, RefundPercent: 100},
			{MinDaysBefore: 3, RefundPercent: 50},
			{MinDaysBefore: 0, RefundPercent: 0},
		},
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) BuildRM() *readmodel.PropertyRM {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return &readmodel.PropertyRM{
		ID:             p.ID,
		Name:           p.Name,
		BaseGuests:     p.BaseGuests,
		MaxGuests:      p.MaxGuests,
		WeekdayRate:    p.WeekdayRate,
		WeekendRate:    p.WeekendRate,
		ExtraAdultRate: p.ExtraAdultRate,
		ExtraChildRate: p.ExtraChildRate,
		VegMealRate:    p.VegMealRate,
		NonVegMealRate: p.NonVegMealRate,
		Policy:         p.Policy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (p *PropertyBuilder) BuildPricingConfig() property.PricingConfig {
	return property.PricingConfig{
		BaseGuests:     int(p.BaseGuests),
		MaxGuests:      int(p.MaxGuests),
		WeekdayRate:    p.WeekdayRate,
		WeekendRate:    p.WeekendRate,
		ExtraAdultRate: p.ExtraAdultRate,
		ExtraChildRate: p.ExtraChildRate,
		VegMealRate:    p.VegMealRate,
		NonVegMealRate: p.NonVegMealRate,
	}
}
