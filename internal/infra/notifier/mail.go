// Package notifier delivers booking lifecycle emails over SMTP. Delivery is
// best effort: callers log failures and never roll back the operation that
// triggered the notification.
package notifier

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/readmodel"
)

type MailNotifier struct {
	client   *mail.Client
	from     string
	fromName string
}

func NewMailNotifier(cfg config.SMTPConfig) (*MailNotifier, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize smtp client")
	}

	return &MailNotifier{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
	}, nil
}

func (n *MailNotifier) BookingConfirmed(ctx context.Context, b *readmodel.BookingRM, user *readmodel.UserRM) error {
	subject := fmt.Sprintf("Booking confirmed: %s", b.PropertyName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking at %s is confirmed.\n\nCheck-in: %s\nCheck-out: %s\nGuests: %d adults, %d children\nTotal paid: INR %d\n\nBooking reference: %s\n",
		user.Name,
		b.PropertyName,
		b.CheckIn.Format("02 Jan 2006"),
		b.CheckOut.Format("02 Jan 2006"),
		b.Adults,
		b.Children,
		b.GrandTotal,
		b.ID,
	)

	return n.send(ctx, user.Email, subject, body)
}

func (n *MailNotifier) BookingCancelled(ctx context.Context, b *readmodel.BookingRM, user *readmodel.UserRM, refundAmount int64) error {
	subject := fmt.Sprintf("Booking cancelled: %s", b.PropertyName)

	refundLine := "No refund is due for this cancellation."
	if refundAmount > 0 {
		refundLine = fmt.Sprintf("A refund of INR %d has been initiated and will reach you in 5-7 business days.", refundAmount)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking at %s (check-in %s) has been cancelled.\n\n%s\n\nBooking reference: %s\n",
		user.Name,
		b.PropertyName,
		b.CheckIn.Format("02 Jan 2006"),
		refundLine,
		b.ID,
	)

	return n.send(ctx, user.Email, subject, body)
}

func (n *MailNotifier) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(n.fromName, n.from); err != nil {
		return errs.Wrap(err, "failed to set from address")
	}
	if err := msg.To(to); err != nil {
		return errs.Wrap(err, "failed to set to address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}
