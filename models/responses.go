package models

import "time"

// Response is the envelope shared by every JSON endpoint. Ok is the
// machine-checkable flag; Code refines a rejection so clients can tell
// "try again" (rate_limited) from "fix your input" (invalid_request) from
// "not authorized" (unauthorized, unauthenticated).
type Response struct {
	Ok   bool   `json:"ok"`
	Msg  string `json:"msg,omitempty"`
	Code string `json:"code,omitempty"`
}

// LocationResult is the outcome of a geofence check.
type LocationResult struct {
	Ok       bool   `json:"ok"`
	Inside   bool   `json:"inside"`
	Distance *int   `json:"distance,omitempty"`
	Msg      string `json:"msg,omitempty"`
	Code     string `json:"code,omitempty"`
}

// GeofenceResult is the raw geofence decision.
type GeofenceResult struct {
	Inside         bool
	DistanceMeters int
}

// MeResponse is returned by GET /api/auth/me. SessionExpiry is in Unix
// milliseconds.
type MeResponse struct {
	Ok            bool    `json:"ok"`
	User          Session `json:"user"`
	SessionExpiry int64   `json:"sessionExpiry"`
}

// QRResponse is returned by POST /api/admin/generate-qr.
type QRResponse struct {
	Ok    bool   `json:"ok"`
	QRURL string `json:"qrUrl"`
}

// CSRFResponse is returned by GET /api/admin/csrf-token.
type CSRFResponse struct {
	Ok        bool   `json:"ok"`
	CSRFToken string `json:"csrfToken"`
}

// OrderAccepted is returned by POST /api/orders/create.
type OrderAccepted struct {
	Ok        bool      `json:"ok"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// DataResponse wraps a list payload.
type DataResponse[T any] struct {
	Ok   bool `json:"ok"`
	Data []T  `json:"data"`
}
