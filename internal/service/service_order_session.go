// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/metrics"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/internal/validators"
	"github.com/MKhiriev/go-table-order/models"
)

// Messages returned by ValidateLocation.
const (
	MsgAdminBypass    = "Admin access: location check bypassed."
	MsgInvalidQRToken = "Invalid QR token"
	MsgInsideVenue    = "Inside restaurant radius"
	MsgOutsideVenue   = "Outside restaurant area, cannot place order"
)

// Codes of a rejected location check.
const (
	CodeUnauthorized    = "unauthorized"
	CodeOutsideGeofence = "outside_geofence"
)

// orderSessionService drives a customer from a scanned QR token to an
// accepted order. The table token is re-verified at every step.
type orderSessionService struct {
	tokens      TokenService
	geofence    GeofenceService
	credentials CredentialService
	store       store.StateStore
	ids         IDGenerator
	notifier    OrderNotifier
	validator   validators.Validator

	adminBypass bool
	clock       Clock

	logger *logger.Logger
}

// OrderSessionDeps groups the collaborators of the order session flow.
type OrderSessionDeps struct {
	Tokens      TokenService
	Geofence    GeofenceService
	Credentials CredentialService
	Store       store.StateStore
	IDs         IDGenerator
	Notifier    OrderNotifier
	Validator   validators.Validator

	// AdminBypass lets a valid admin session skip the geofence.
	AdminBypass bool
	Clock       Clock
}

// NewOrderSessionService constructs the order session flow. A nil Notifier
// disables notifications.
func NewOrderSessionService(deps OrderSessionDeps, logger *logger.Logger) OrderSessionService {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &orderSessionService{
		tokens:      deps.Tokens,
		geofence:    deps.Geofence,
		credentials: deps.Credentials,
		store:       deps.Store,
		ids:         deps.IDs,
		notifier:    notifier,
		validator:   deps.Validator,
		adminBypass: deps.AdminBypass,
		clock:       deps.Clock,
		logger:      logger,
	}
}

// ValidateLocation checks that the customer is inside the venue.
//
// An invalid token is not an error: the result carries ok=false and the
// "Invalid QR token" message. Missing or out-of-range coordinates are
// ErrValidation.
func (s *orderSessionService) ValidateLocation(ctx context.Context, req models.LocationRequest, admin *models.Session) (models.LocationResult, error) {
	log := logger.FromContext(ctx)

	if admin != nil && s.adminBypass {
		log.Warn().Str("username", admin.Username).Msg("location check bypassed by admin")
		return models.LocationResult{Ok: true, Inside: true, Msg: MsgAdminBypass}, nil
	}

	if _, err := s.tokens.VerifyTableToken(ctx, req.Token); err != nil {
		return models.LocationResult{Ok: false, Msg: MsgInvalidQRToken, Code: CodeUnauthorized}, nil
	}

	if err := s.validator.Validate(ctx, req, "Lat", "Lng"); err != nil {
		return models.LocationResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	result := s.geofence.Check(float64(*req.Lat), float64(*req.Lng))
	distance := result.DistanceMeters
	out := models.LocationResult{
		Ok:       result.Inside,
		Inside:   result.Inside,
		Distance: &distance,
		Msg:      MsgInsideVenue,
	}
	if !result.Inside {
		out.Msg = MsgOutsideVenue
		out.Code = CodeOutsideGeofence
	}

	log.Debug().Bool("inside", result.Inside).Int("distance", distance).Msg("location checked")
	return out, nil
}

// ValidatePin reports whether pin unlocks the table of the token. A bad
// token, an unknown table, a table other than the token's and a wrong PIN
// all produce false; only storage failures are errors.
func (s *orderSessionService) ValidatePin(ctx context.Context, req models.PinRequest) (bool, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return false, nil
	}

	token, err := s.tokens.VerifyTableToken(ctx, req.Token)
	if err != nil {
		return false, nil
	}
	if token.TableID != req.TableID {
		logger.FromContext(ctx).Info().
			Stringer("token_table_id", token.TableID).
			Stringer("table_id", req.TableID).
			Msg("pin check for a foreign table")
		return false, nil
	}

	err = s.credentials.VerifyTablePin(ctx, req.TableID, req.PIN)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrInvalidCredentials):
		return false, nil
	default:
		return false, err
	}
}

// SubmitOrder verifies the token, persists the order and hands it to the
// notifier. Nothing is persisted when verification or validation fails.
func (s *orderSessionService) SubmitOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	log := logger.FromContext(ctx)

	token, err := s.tokens.VerifyTableToken(ctx, req.Token)
	if err != nil {
		return models.Order{}, ErrInvalidToken
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if token.TableID != req.TableID {
		log.Info().
			Stringer("token_table_id", token.TableID).
			Stringer("table_id", req.TableID).
			Msg("order for a foreign table rejected")
		return models.Order{}, ErrInvalidToken
	}

	items := req.OrderItems()
	order := models.Order{
		ID:        s.ids.Generate(),
		TableID:   req.TableID,
		Items:     items,
		Total:     models.OrderTotal(items),
		CreatedAt: s.clock.now().UTC().Truncate(time.Millisecond),
	}

	snap, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		snap.Orders = append(snap.Orders, order)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*orderSessionService.SubmitOrder").Msg("error persisting order")
		return models.Order{}, fmt.Errorf("error persisting order: %w", err)
	}

	metrics.OrdersAccepted.Inc()
	log.Info().
		Str("order_id", order.ID).
		Stringer("table_id", order.TableID).
		Float64("total", order.Total).
		Msg("order accepted")

	s.notifier.OrderAccepted(ctx, order, snap.Orders)
	return order, nil
}

type nopNotifier struct{}

func (nopNotifier) OrderAccepted(context.Context, models.Order, []models.Order) {}
