package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ChannelAMQP is the metrics label of the kitchen queue notifier.
const ChannelAMQP = "amqp"

// amqpPublisher is the part of *amqp.Channel the notifier uses.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialFunc opens a channel with the exchange declared.
type dialFunc func() (amqpPublisher, func() error, error)

// AMQPNotifier publishes accepted orders to a durable topic exchange with
// routing key "orders.table.<id>". A lost connection is re-dialled on the
// next order.
type AMQPNotifier struct {
	mu        sync.Mutex
	dial      dialFunc
	channel   amqpPublisher
	closeConn func() error
	exchange  string

	logger *logger.Logger
}

// NewAMQPNotifier dials the broker and declares the exchange. It returns
// ErrNotifierNotConfigured when no URL is set.
func NewAMQPNotifier(cfg config.AMQP, logger *logger.Logger) (*AMQPNotifier, error) {
	if cfg.URL == "" {
		return nil, ErrNotifierNotConfigured
	}

	n := newAMQPNotifier(func() (amqpPublisher, func() error, error) {
		return dialExchange(cfg.URL, cfg.Exchange)
	}, cfg.Exchange, logger)

	if err := n.connect(); err != nil {
		return nil, err
	}
	return n, nil
}

func newAMQPNotifier(dial dialFunc, exchange string, logger *logger.Logger) *AMQPNotifier {
	return &AMQPNotifier{dial: dial, exchange: exchange, logger: logger}
}

func dialExchange(url, exchange string) (amqpPublisher, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("error opening AMQP channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("error declaring exchange %q: %w", exchange, err)
	}

	return ch, conn.Close, nil
}

// connect must be called with n.mu held or before n is shared.
func (n *AMQPNotifier) connect() error {
	ch, closeConn, err := n.dial()
	if err != nil {
		return err
	}
	n.channel, n.closeConn = ch, closeConn
	return nil
}

func (n *AMQPNotifier) Name() string { return ChannelAMQP }

func (n *AMQPNotifier) Notify(ctx context.Context, order models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("error encoding order: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.channel == nil {
		if err = n.connect(); err != nil {
			return err
		}
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, RoutingKey(order), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    order.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		// the channel is unusable after a failed publish; re-dial next time
		n.reset()
		return fmt.Errorf("error publishing order: %w", err)
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reset()
}

func (n *AMQPNotifier) reset() error {
	var err error
	if n.channel != nil {
		err = n.channel.Close()
	}
	if n.closeConn != nil {
		if cerr := n.closeConn(); err == nil {
			err = cerr
		}
	}
	n.channel, n.closeConn = nil, nil
	return err
}

// RoutingKey is "orders.table.<tableId>".
func RoutingKey(order models.Order) string {
	return "orders.table." + order.TableID.String()
}
