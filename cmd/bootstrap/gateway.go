package bootstrap

import (
	"stayhub/internal/infra/gateway"
	"stayhub/internal/infra/notifier"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(usecase.Notifier)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *gateway.RazorpayClient {
	return gateway.NewRazorpayClient(cfg.Gateway)
}

func NewNotifier(cfg config.Config) (*notifier.MailNotifier, error) {
	return notifier.NewMailNotifier(cfg.SMTP)
}
