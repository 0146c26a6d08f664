package readmodel

import (
	"time"

	"stayhub/internal/domain/property"

	"github.com/google/uuid"
)

type PropertyRM struct {
	ID             uuid.UUID                   `json:"id"`
	Name           string                      `json:"name"`
	BaseGuests     int32                       `json:"base_guests"`
	MaxGuests      int32                       `json:"max_guests"`
	WeekdayRate    int64                       `json:"weekday_rate"`
	WeekendRate    int64                       `json:"weekend_rate"`
	ExtraAdultRate int64                       `json:"extra_adult_rate"`
	ExtraChildRate int64                       `json:"extra_child_rate"`
	VegMealRate    int64                       `json:"veg_meal_rate"`
	NonVegMealRate int64                       `json:"nonveg_meal_rate"`
	Policy         property.CancellationPolicy `json:"cancellation_policy"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}
