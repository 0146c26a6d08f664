package usecase

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/readmodel"
)

// bookingFromRM rehydrates the domain aggregate so state transitions run
// through its guards instead of ad-hoc field checks. A row that no longer
// satisfies the value-object invariants is surfaced, not papered over.
func bookingFromRM(rm *readmodel.BookingRM) (*booking.Booking, error) {
	guests, err := booking.NewGuestCount(rm.Adults, rm.Children)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid guest counts")
	}
	meals, err := booking.NewMealSelection(rm.VegMeals, rm.NonVegMeals)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid meal counts")
	}

	return booking.ReconstructBooking(
		rm.ID, rm.UserID, rm.PropertyID,
		booking.ReconstructStayDates(rm.CheckIn, rm.CheckOut),
		guests,
		meals,
		rm.Contact,
		booking.PriceBreakdown{
			Nights:     rm.TotalNights,
			Subtotal:   rm.Subtotal,
			Tax:        rm.Tax,
			GrandTotal: rm.GrandTotal,
		},
		rm.GatewayOrderID,
		rm.GatewayPaymentID,
		booking.PaymentStatus(rm.PaymentStatus),
		booking.Status(rm.Status),
		rm.Cancelled,
		booking.RefundStatus(rm.RefundStatus),
		rm.CreatedAt, rm.UpdatedAt,
	), nil
}

func toPricingConfig(rm *readmodel.PropertyRM) property.PricingConfig {
	return property.PricingConfig{
		BaseGuests:     int(rm.BaseGuests),
		MaxGuests:      int(rm.MaxGuests),
		WeekdayRate:    rm.WeekdayRate,
		WeekendRate:    rm.WeekendRate,
		ExtraAdultRate: rm.ExtraAdultRate,
		ExtraChildRate: rm.ExtraChildRate,
		VegMealRate:    rm.VegMealRate,
		NonVegMealRate: rm.NonVegMealRate,
	}
}
