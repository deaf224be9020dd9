package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)
	log.Info().Str("username", session.Username).Msg("admin logged in")

	_, _ = utils.WriteJSON(w, models.Response{Ok: true}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	_, _ = utils.WriteJSON(w, models.Response{Ok: true}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	_, _ = utils.WriteJSON(w, models.MeResponse{
		Ok:            true,
		User:          session,
		SessionExpiry: session.ExpiresAt.UnixMilli(),
	}, http.StatusOK)
}
