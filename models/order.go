package models

import (
	"math"
	"time"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Order is an accepted customer order. Orders are append-only: once
// persisted they are never edited in place.
type Order struct {
	// ID is a UUIDv7 assigned at acceptance time.
	ID        string      `json:"id"`
	TableID   TableID     `json:"tableId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderTotal sums price*qty over items, rounded to cents.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return math.Round(total*100) / 100
}

// ItemSummary aggregates one menu item over the whole order history.
type ItemSummary struct {
	ItemName string    `json:"itemName"`
	TotalQty int       `json:"totalQty"`
	Tables   []TableID `json:"tables"`
}
