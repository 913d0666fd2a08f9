// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	orderdom "storefront/internal/domain/order"
)

// EmailClient abstracts the concrete mail transport (SendGrid, SMTP, SES).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// OrderMailer implements usecase.Notifier: it delivers the rendered order
// summary to the client and, when configured, a copy to the store inbox.
type OrderMailer struct {
	client      EmailClient
	fromAddress string
	storeCopyTo string
}

func NewOrderMailer(client EmailClient, fromAddress, storeCopyTo string) *OrderMailer {
	return &OrderMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		storeCopyTo: strings.TrimSpace(storeCopyTo),
	}
}

// NotifyOrderPlaced sends the order summary. The client address comes from
// the order's own snapshot of the client.
func (m *OrderMailer) NotifyOrderPlaced(ctx context.Context, o *orderdom.Order) error {
	if o == nil {
		return fmt.Errorf("order_mailer: order is nil")
	}

	subject := fmt.Sprintf("Order %s", o.Number)
	body := o.Summary()

	g, ctx := errgroup.WithContext(ctx)

	if o.Client != nil && strings.TrimSpace(o.Client.Email) != "" {
		to := strings.TrimSpace(o.Client.Email)
		g.Go(func() error {
			return m.client.Send(ctx, m.fromAddress, to, subject, body)
		})
	}

	if m.storeCopyTo != "" {
		g.Go(func() error {
			return m.client.Send(ctx, m.fromAddress, m.storeCopyTo, subject, body)
		})
	}

	return g.Wait()
}
