package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/app"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/internal/validators"
	"github.com/MKhiriev/go-table-order/models"
)

// Error codes of the {ok:false, msg, code} envelope.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeUnauthorized    = "unauthorized"
	CodeInvalidRequest  = "invalid_request"
	CodeRateLimited     = "rate_limited"
	CodeNotFound        = "not_found"
	CodeForbidden       = "forbidden"
	CodeInternal        = "internal"
)

type errorMapping struct {
	status int
	code   string
	msg    string
	// detail exposes err.Error() instead of msg.
	detail bool
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []struct {
	target error
	errorMapping
}{
	{service.ErrInvalidCredentials, errorMapping{http.StatusUnauthorized, CodeUnauthenticated, app.MsgInvalidCredentials, false}},
	{service.ErrUnauthenticated, errorMapping{http.StatusUnauthorized, CodeUnauthenticated, app.MsgInvalidSession, false}},
	{service.ErrInvalidToken, errorMapping{http.StatusUnauthorized, CodeUnauthorized, app.MsgInvalidQRToken, false}},
	{validators.ErrInvalidRequest, errorMapping{http.StatusBadRequest, CodeInvalidRequest, "", true}},
	{service.ErrValidation, errorMapping{http.StatusBadRequest, CodeInvalidRequest, "", true}},
	{ErrInvalidJSON, errorMapping{http.StatusBadRequest, CodeInvalidRequest, "", true}},
	{service.ErrRateLimited, errorMapping{http.StatusTooManyRequests, CodeRateLimited, app.MsgTooManyRequests, false}},
	{service.ErrTableNotFound, errorMapping{http.StatusNotFound, CodeNotFound, app.MsgTableNotFound, false}},
	{ErrRouteNotFound, errorMapping{http.StatusNotFound, CodeNotFound, app.MsgNotFound, false}},
	{ErrCSRFTokenMismatch, errorMapping{http.StatusForbidden, CodeForbidden, app.MsgInvalidCSRFToken, false}},
	{store.ErrStorage, errorMapping{http.StatusInternalServerError, CodeInternal, app.MsgInternalServerError, false}},
}

var internalError = errorMapping{http.StatusInternalServerError, CodeInternal, app.MsgInternalServerError, false}

func mapError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.errorMapping
		}
	}
	return internalError
}

// writeError answers with the {ok:false, msg, code} envelope for err.
// Server-side failures are logged at error level, the rest at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	m := mapError(err)

	msg := m.msg
	if m.detail {
		msg = err.Error()
	}

	log := logger.FromRequest(r)
	if m.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", m.status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.Response{Ok: false, Msg: msg, Code: m.code}, m.status)
}

// writeErrorMsg is writeError with a fixed client message.
func writeErrorMsg(w http.ResponseWriter, r *http.Request, err error, msg string) {
	m := mapError(err)
	logger.FromRequest(r).Debug().Err(err).Int("status", m.status).Msg("request rejected")
	_, _ = utils.WriteJSON(w, models.Response{Ok: false, Msg: msg, Code: m.code}, m.status)
}
