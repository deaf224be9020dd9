package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/metrics"
	"github.com/MKhiriev/go-table-order/models"
)

// DefaultSendTimeout bounds one notifier call when none is configured.
const DefaultSendTimeout = 10 * time.Second

// Dispatcher drains a bounded queue of accepted orders and hands every
// order to each StaffNotifier. It is a workers.Worker.
type Dispatcher struct {
	queue     chan models.Order
	notifiers []StaffNotifier
	timeout   time.Duration
	errs      chan error

	logger *logger.Logger
}

// NewDispatcher creates a dispatcher with room for size queued orders.
func NewDispatcher(notifiers []StaffNotifier, size int, timeout time.Duration, logger *logger.Logger) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Dispatcher{
		queue:     make(chan models.Order, size),
		notifiers: notifiers,
		timeout:   timeout,
		errs:      make(chan error, size),
		logger:    logger,
	}
}

// Enqueue queues order without blocking. A full queue drops the order and
// returns false.
func (d *Dispatcher) Enqueue(order models.Order) bool {
	if len(d.notifiers) == 0 {
		return true
	}

	select {
	case d.queue <- order:
		return true
	default:
		for _, n := range d.notifiers {
			metrics.RecordNotification(n.Name(), metrics.ResultDropped)
		}
		d.logger.Warn().Err(ErrQueueFull).Str("order_id", order.ID).Msg("staff notification dropped")
		return false
	}
}

// Run delivers queued orders until ctx is cancelled, then delivers what is
// left in the queue and closes the notifiers.
func (d *Dispatcher) Run(ctx context.Context) error {
	logged := make(chan struct{})
	go d.logErrors(logged)

	defer func() {
		close(d.errs)
		<-logged
		for _, n := range d.notifiers {
			if err := n.Close(); err != nil {
				d.logger.Err(err).Str("channel", n.Name()).Msg("error closing notifier")
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			d.drain()
			return nil
		case order := <-d.queue:
			d.deliver(context.WithoutCancel(ctx), order)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case order := <-d.queue:
			d.deliver(context.Background(), order)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, order models.Order) {
	for _, n := range d.notifiers {
		sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
		err := n.Notify(sendCtx, order)
		cancel()

		if err != nil {
			metrics.RecordNotification(n.Name(), metrics.ResultFailed)
			d.report(fmt.Errorf("%w: %s: order %s: %w", ErrNotification, n.Name(), order.ID, err))
			continue
		}
		metrics.RecordNotification(n.Name(), metrics.ResultSent)
		d.logger.Debug().Str("channel", n.Name()).Str("order_id", order.ID).Msg("staff notified")
	}
}

// report never blocks delivery; an error that does not fit is logged here.
func (d *Dispatcher) report(err error) {
	select {
	case d.errs <- err:
	default:
		d.logger.Err(err).Msg("staff notification failed")
	}
}

func (d *Dispatcher) logErrors(done chan<- struct{}) {
	defer close(done)
	for err := range d.errs {
		d.logger.Err(err).Msg("staff notification failed")
	}
}
