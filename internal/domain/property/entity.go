package property

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCapacity = errors.New("guest capacity must be positive")
	ErrNegativeRate         = errors.New("rates cannot be negative")
)

// Property is a read-only collaborator of the booking core: it supplies the
// pricing configuration and the ordered cancellation policy.
type Property struct {
	id     uuid.UUID
	name   string
	config PricingConfig
	policy CancellationPolicy
}

// PricingConfig holds the nightly and surcharge rates in whole rupees.
type PricingConfig struct {
	BaseGuests     int
	MaxGuests      int
	WeekdayRate    int64
	WeekendRate    int64
	ExtraAdultRate int64
	ExtraChildRate int64
	VegMealRate    int64
	NonVegMealRate int64
}

func NewProperty(id uuid.UUID, name string, config PricingConfig, policy CancellationPolicy) (*Property, error) {
	if config.BaseGuests <= 0 || config.MaxGuests <= 0 {
		return nil, ErrInvalidGuestCapacity
	}
	if config.WeekdayRate < 0 || config.WeekendRate < 0 ||
		config.ExtraAdultRate < 0 || config.ExtraChildRate < 0 ||
		config.VegMealRate < 0 || config.NonVegMealRate < 0 {
		return nil, ErrNegativeRate
	}

	return &Property{
		id:     id,
		name:   name,
		config: config,
		policy: policy,
	}, nil
}

func (p *Property) ID() uuid.UUID              { return p.id }
func (p *Property) Name() string               { return p.name }
func (p *Property) Config() PricingConfig      { return p.config }
func (p *Property) Policy() CancellationPolicy { return p.policy }
func (p *Property) MaxGuests() int             { return p.config.MaxGuests }
