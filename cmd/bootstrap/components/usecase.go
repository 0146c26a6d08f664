package components

import (
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewBookingUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewCancellationUseCase,
	),
)
