// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"encoding/json"
	"slices"
	"sync"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/metrics"
	"github.com/MKhiriev/go-table-order/models"
)

// EventOrdersUpdate is the event name of every live frame.
const EventOrdersUpdate = "orders:update"

// DefaultSubscriberBuffer is the number of frames a subscriber may lag
// behind before it is disconnected.
const DefaultSubscriberBuffer = 16

// Envelope is one live frame.
type Envelope struct {
	Event string         `json:"event"`
	Data  []models.Order `json:"data"`
}

// Subscription is one live client registered with a Hub.
type Subscription struct {
	frames chan []byte
	once   sync.Once
}

// Frames yields encoded envelopes. The channel is closed when the
// subscription ends, either by Unsubscribe or because the client fell
// behind.
func (s *Subscription) Frames() <-chan []byte {
	return s.frames
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.frames) })
}

// Hub keeps the latest full order list and fans it out to subscribers.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
	latest      []models.Order
	frame       []byte
	buffer      int
	done        chan struct{}
	closeOnce   sync.Once

	logger *logger.Logger
}

// NewHub creates a hub seeded with the current order list.
func NewHub(orders []models.Order, buffer int, logger *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	h := &Hub{
		subscribers: make(map[*Subscription]struct{}),
		buffer:      buffer,
		done:        make(chan struct{}),
		logger:      logger,
	}
	h.latest, h.frame = h.encode(orders)
	return h
}

// Subscribe registers a client and queues the current list as its first
// frame.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{frames: make(chan []byte, h.buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[sub] = struct{}{}
	sub.frames <- h.frame
	metrics.LiveSubscribers.Set(float64(len(h.subscribers)))
	return sub
}

// Unsubscribe removes sub and closes its frame channel. Calling it twice is
// harmless.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		metrics.LiveSubscribers.Set(float64(len(h.subscribers)))
	}
	sub.close()
}

// Publish replaces the latest list and pushes it to every subscriber.
// Order history is append-only, so a list shorter than the current one is
// stale and ignored. A subscriber whose buffer is full is dropped.
func (h *Hub) Publish(orders []models.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(orders) < len(h.latest) {
		h.logger.Debug().Int("have", len(h.latest)).Int("got", len(orders)).Msg("stale order list ignored")
		return
	}
	h.latest, h.frame = h.encode(orders)

	for sub := range h.subscribers {
		select {
		case sub.frames <- h.frame:
		default:
			delete(h.subscribers, sub)
			sub.close()
			h.logger.Warn().Msg("live subscriber too slow, disconnected")
		}
	}
	metrics.LiveSubscribers.Set(float64(len(h.subscribers)))
}

// Latest returns a copy of the list last published.
func (h *Hub) Latest() []models.Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.latest)
}

// Len returns the number of subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Done is closed when the hub shuts down.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		sub.close()
	}
	metrics.LiveSubscribers.Set(0)
}

func (h *Hub) encode(orders []models.Order) ([]models.Order, []byte) {
	if orders == nil {
		orders = []models.Order{}
	}
	frame, err := json.Marshal(Envelope{Event: EventOrdersUpdate, Data: orders})
	if err != nil {
		// models.Order holds only plain values
		h.logger.Err(err).Str("func", "*Hub.encode").Msg("error encoding live frame")
		return orders, h.frame
	}
	return orders, frame
}
