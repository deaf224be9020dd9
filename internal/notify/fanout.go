package notify

import (
	"context"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
)

// Fanout publishes accepted orders to live subscribers and queues them for
// staff notification.
type Fanout struct {
	publisher Publisher
	enqueuer  Enqueuer
}

// NewFanout combines a live publisher with a staff notification queue.
// Either may be nil.
func NewFanout(publisher Publisher, enqueuer Enqueuer) *Fanout {
	return &Fanout{publisher: publisher, enqueuer: enqueuer}
}

// OrderAccepted publishes orders synchronously, so the next subscriber sees
// the new order, then queues order without waiting for delivery.
func (f *Fanout) OrderAccepted(ctx context.Context, order models.Order, orders []models.Order) {
	if f.publisher != nil {
		f.publisher.Publish(orders)
	}
	if f.enqueuer != nil && !f.enqueuer.Enqueue(order) {
		logger.FromContext(ctx).Warn().Str("order_id", order.ID).Msg("order not queued for staff notification")
	}
}
