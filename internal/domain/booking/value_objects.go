package booking

import (
	"errors"
	"time"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrCheckInNotInFuture      = errors.New("check-in must be after today")
	ErrNoAdults                = errors.New("at least one adult is required")
	ErrNegativeGuestCount      = errors.New("guest counts cannot be negative")
	ErrNegativeMealCount       = errors.New("meal counts cannot be negative")
)

// StayDates is a date-granular [checkIn, checkOut) range. Time-of-day is
// ignored; a stay of N nights has checkOut exactly N days after checkIn.
type StayDates struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayDates(checkIn, checkOut time.Time, now time.Time) (StayDates, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	// Same-day check-in is rejected regardless of the time of day.
	if !checkIn.After(truncateToDate(now)) {
		return StayDates{}, ErrCheckInNotInFuture
	}
	if !checkOut.After(checkIn) {
		return StayDates{}, ErrCheckOutNotAfterCheckIn
	}

	return StayDates{checkIn: checkIn, checkOut: checkOut}, nil
}

func ReconstructStayDates(checkIn, checkOut time.Time) StayDates {
	return StayDates{checkIn: truncateToDate(checkIn), checkOut: truncateToDate(checkOut)}
}

func (s StayDates) CheckIn() time.Time {
	return s.checkIn
}

func (s StayDates) CheckOut() time.Time {
	return s.checkOut
}

func (s StayDates) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / (24 * time.Hour))
}

// DaysBefore returns the number of calendar days between now's date and
// check-in. Time of day on either side is ignored: a cancellation at any
// hour of a day exactly N days before check-in counts as N days before.
func (s StayDates) DaysBefore(now time.Time) int {
	return int(s.checkIn.Sub(truncateToDate(now)) / (24 * time.Hour))
}

// truncateToDate keeps only the calendar date, normalized to UTC midnight.
// Normalizing the location matters: the caller's clock may carry a zone
// offset, and comparing instants across zones would shift which day a
// timestamp falls on.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type GuestCount struct {
	adults   int
	children int
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < 0 || children < 0 {
		return GuestCount{}, ErrNegativeGuestCount
	}
	if adults == 0 {
		return GuestCount{}, ErrNoAdults
	}
	return GuestCount{adults: adults, children: children}, nil
}

func (g GuestCount) Adults() int {
	return g.adults
}

func (g GuestCount) Children() int {
	return g.children
}

func (g GuestCount) Total() int {
	return g.adults + g.children
}

type MealSelection struct {
	veg    int
	nonVeg int
}

func NewMealSelection(veg, nonVeg int) (MealSelection, error) {
	if veg < 0 || nonVeg < 0 {
		return MealSelection{}, ErrNegativeMealCount
	}
	return MealSelection{veg: veg, nonVeg: nonVeg}, nil
}

func (m MealSelection) Veg() int {
	return m.veg
}

func (m MealSelection) NonVeg() int {
	return m.nonVeg
}

func (m MealSelection) Total() int {
	return m.veg + m.nonVeg
}

func (m MealSelection) IsRequested() bool {
	return m.Total() > 0
}

// Money is an amount in whole rupees. The payment gateway works in paise;
// conversion happens only at that boundary.
type Money struct {
	rupees int64
}

func NewMoney(rupees int64) Money {
	return Money{rupees: rupees}
}

func (m Money) Rupees() int64 {
	return m.rupees
}

func (m Money) Paise() int64 {
	return m.rupees * 100
}

func (m Money) Add(other Money) Money {
	return Money{rupees: m.rupees + other.rupees}
}

func (m Money) IsPositive() bool {
	return m.rupees > 0
}
