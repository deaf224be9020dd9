package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/wneessen/go-mail"
)

// ChannelEmail is the metrics label of the e-mail notifier.
const ChannelEmail = "email"

// mailSender is the part of *mail.Client the notifier uses.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// EmailNotifier mails every accepted order to the staff address.
type EmailNotifier struct {
	sender mailSender
	from   string
	to     string

	logger *logger.Logger
}

// NewEmailNotifier builds an SMTP notifier. It returns
// ErrNotifierNotConfigured when no staff address or SMTP host is set.
func NewEmailNotifier(cfg config.Notify, logger *logger.Logger) (*EmailNotifier, error) {
	if cfg.Email == "" || cfg.SMTP.Host == "" {
		return nil, ErrNotifierNotConfigured
	}

	opts := []mail.Option{mail.WithTLSPortPolicy(mail.TLSOpportunistic)}
	if cfg.SMTP.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.SMTP.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(cfg.SMTP.Password),
		)
	}

	client, err := mail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating SMTP client: %w", err)
	}

	return newEmailNotifier(client, cfg.SMTP.From, cfg.Email, logger), nil
}

func newEmailNotifier(sender mailSender, from, to string, logger *logger.Logger) *EmailNotifier {
	return &EmailNotifier{sender: sender, from: from, to: to, logger: logger}
}

func (n *EmailNotifier) Name() string { return ChannelEmail }

func (n *EmailNotifier) Notify(ctx context.Context, order models.Order) error {
	msg, err := n.message(order)
	if err != nil {
		return err
	}
	if err = n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending order mail: %w", err)
	}
	return nil
}

func (n *EmailNotifier) Close() error { return nil }

func (n *EmailNotifier) message(order models.Order) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return nil, fmt.Errorf("invalid staff address: %w", err)
	}
	msg.Subject(OrderSubject(order))
	msg.SetBodyString(mail.TypeTextPlain, OrderBody(order))
	return msg, nil
}

// OrderSubject is "New order #<id> - Table <tableId>".
func OrderSubject(order models.Order) string {
	return fmt.Sprintf("New order #%s - Table %s", order.ID, order.TableID)
}

// OrderBody lists one "name xqty" line per item.
func OrderBody(order models.Order) string {
	var b strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%s x%d\n", item.Name, item.Qty)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.Total)
	return b.String()
}
