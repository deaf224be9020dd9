package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a latitude or longitude in degrees.
//
// Browsers post geolocation either as numbers or as strings, so both are
// accepted. A non-numeric string fails decoding, which callers report as a
// validation error rather than as "outside the venue".
type Coordinate float64

// UnmarshalJSON accepts 19.07 and "19.07".
func (c *Coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("coordinate %q is not a number", s)
		}
		*c = Coordinate(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("coordinate is not a number: %w", err)
	}
	*c = Coordinate(v)
	return nil
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=128"`
	Password string `json:"password" validate:"required,max=128"`
}

// GenerateQRRequest is the body of POST /api/admin/generate-qr.
type GenerateQRRequest struct {
	TableID TableID `json:"tableId" validate:"required,gt=0"`
}

// SaveTableRequest is the body of POST /api/admin/tables.
type SaveTableRequest struct {
	ID   TableID `json:"id" validate:"required,gt=0"`
	Name string  `json:"name" validate:"max=100"`
	PIN  string  `json:"pin" validate:"required,min=4,max=12,number"`
}

// LocationRequest is the body of POST /api/validate-location.
//
// Lat and Lng are pointers so that a missing coordinate is distinguishable
// from a coordinate equal to zero.
type LocationRequest struct {
	Token string      `json:"token"`
	Lat   *Coordinate `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng   *Coordinate `json:"lng" validate:"required,gte=-180,lte=180"`
}

// PinRequest is the body of POST /api/validate-pin.
type PinRequest struct {
	Token   string  `json:"token" validate:"required"`
	TableID TableID `json:"tableId" validate:"required,gt=0"`
	PIN     string  `json:"pin" validate:"required,max=12"`
}

// OrderItemRequest is one line of a submitted order.
type OrderItemRequest struct {
	Name  string  `json:"name" validate:"required,notblank,max=200"`
	Qty   int     `json:"qty" validate:"gt=0,lte=1000"`
	Price float64 `json:"price" validate:"gte=0"`
}

// CreateOrderRequest is the body of POST /api/orders/create.
type CreateOrderRequest struct {
	Token   string             `json:"token" validate:"required"`
	TableID TableID            `json:"tableId" validate:"required,gt=0"`
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// OrderItems converts the request lines into order items.
func (r CreateOrderRequest) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			Name:  strings.TrimSpace(item.Name),
			Qty:   item.Qty,
			Price: item.Price,
		})
	}
	return items
}
