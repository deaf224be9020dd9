package notify

import (
	"context"

	"github.com/MKhiriev/go-table-order/models"
)

// StaffNotifier sends one accepted order to an out-of-band channel.
type StaffNotifier interface {
	// Name is the channel label used in logs and metrics.
	Name() string
	Notify(ctx context.Context, order models.Order) error
	Close() error
}

// Publisher pushes the full order list to live subscribers.
type Publisher interface {
	Publish(orders []models.Order)
}

// Enqueuer accepts an order for background delivery without blocking.
type Enqueuer interface {
	Enqueue(order models.Order) bool
}
