package booking

import (
	"errors"
	"math"
	"time"

	"stayhub/internal/domain/property"
)

var ErrInvalidStay = errors.New("stay must cover at least one night")

// TaxPercent is the single flat tax applied to the subtotal. The upstream
// receipts sometimes show a 9%+9% split; this engine standardises on the
// flat 10% the pricing path has always used.
const TaxPercent = 10

// PriceBreakdown is the itemized quote for a stay. All amounts are whole
// rupees. Subtotal is the sum of the room, extra-guest and meal components
// and GrandTotal is Subtotal plus Tax; both hold by construction.
type PriceBreakdown struct {
	Nights        int   `json:"nights"`
	WeekdayNights int   `json:"weekday_nights"`
	WeekendNights int   `json:"weekend_nights"`
	RoomWeekday   int64 `json:"room_weekday"`
	RoomWeekend   int64 `json:"room_weekend"`

	ExtraAdults      int   `json:"extra_adults"`
	ExtraChildren    int   `json:"extra_children"`
	ExtraAdultAmount int64 `json:"extra_adult_amount"`
	ExtraChildAmount int64 `json:"extra_child_amount"`

	MealAmount int64 `json:"meal_amount"`

	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grand_total"`
}

// CalculateQuote prices a stay against a property's pricing config. It is
// deterministic and performs no I/O.
//
// Each night in [checkIn, checkOut) is classified as weekend (Saturday or
// Sunday) or weekday and charged at the matching nightly rate. Guests beyond
// the base capacity are charged their surcharge rate for every night of the
// stay, children only spilling over once adults have used up the base
// capacity. Meal charges are flat per selected meal, not per night.
func CalculateQuote(
	cfg property.PricingConfig,
	stay StayDates,
	guests GuestCount,
	meals MealSelection,
) (PriceBreakdown, error) {
	nights := stay.Nights()
	if nights < 1 {
		return PriceBreakdown{}, ErrInvalidStay
	}

	var weekdayNights, weekendNights int
	for night := stay.CheckIn(); night.Before(stay.CheckOut()); night = night.AddDate(0, 0, 1) {
		if isWeekend(night) {
			weekendNights++
		} else {
			weekdayNights++
		}
	}

	extraAdults := guests.Adults() - cfg.BaseGuests
	if extraAdults < 0 {
		extraAdults = 0
	}
	remainingBase := cfg.BaseGuests - guests.Adults()
	if remainingBase < 0 {
		remainingBase = 0
	}
	extraChildren := guests.Children() - remainingBase
	if extraChildren < 0 {
		extraChildren = 0
	}

	b := PriceBreakdown{
		Nights:           nights,
		WeekdayNights:    weekdayNights,
		WeekendNights:    weekendNights,
		RoomWeekday:      int64(weekdayNights) * cfg.WeekdayRate,
		RoomWeekend:      int64(weekendNights) * cfg.WeekendRate,
		ExtraAdults:      extraAdults,
		ExtraChildren:    extraChildren,
		ExtraAdultAmount: int64(extraAdults) * cfg.ExtraAdultRate * int64(nights),
		ExtraChildAmount: int64(extraChildren) * cfg.ExtraChildRate * int64(nights),
		MealAmount:       int64(meals.Veg())*cfg.VegMealRate + int64(meals.NonVeg())*cfg.NonVegMealRate,
	}

	b.Subtotal = b.RoomWeekday + b.RoomWeekend + b.ExtraAdultAmount + b.ExtraChildAmount + b.MealAmount
	b.Tax = int64(math.Round(float64(b.Subtotal) * TaxPercent / 100.0))
	b.GrandTotal = b.Subtotal + b.Tax

	return b, nil
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
