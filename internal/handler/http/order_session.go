// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/app"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
)

// validateLocation lets an admin session through without a location
// payload. A body that does not decode is only reported when the session
// check did not already settle the result.
func (h *Handler) validateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var admin *models.Session
	if session, ok := utils.GetSessionFromContext(ctx); ok {
		admin = &session
	}

	var req models.LocationRequest
	decodeErr := utils.DecodeJSON(r, &req)
	if decodeErr != nil {
		if admin == nil {
			writeErrorMsg(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, decodeErr), app.MsgLocationRequired)
			return
		}
		req = models.LocationRequest{}
	}

	result, err := h.services.OrderSessionService.ValidateLocation(ctx, req, admin)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeErrorMsg(w, r, err, app.MsgLocationRequired)
			return
		}
		writeError(w, r, err)
		return
	}

	if decodeErr != nil && !result.Inside {
		writeErrorMsg(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, decodeErr), app.MsgLocationRequired)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// validatePin answers {ok:false} for every rejection so callers cannot
// tell a bad token from a wrong PIN.
func (h *Handler) validatePin(w http.ResponseWriter, r *http.Request) {
	var req models.PinRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid PIN request")
		_, _ = utils.WriteJSON(w, models.Response{Ok: false}, http.StatusOK)
		return
	}

	ok, err := h.services.OrderSessionService.ValidatePin(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.Response{Ok: ok}, http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	order, err := h.services.OrderSessionService.SubmitOrder(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.OrderAccepted{
		Ok:        true,
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
	}, http.StatusOK)
}
