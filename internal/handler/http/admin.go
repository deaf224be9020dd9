package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/app"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
)

func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.issueCSRFToken(w, r)
	if err != nil {
		writeError(w, r, fmt.Errorf("error issuing CSRF token: %w", err))
		return
	}

	_, _ = utils.WriteJSON(w, models.CSRFResponse{Ok: true, CSRFToken: token}, http.StatusOK)
}

func (h *Handler) generateQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GenerateQRRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.TableID <= 0 {
		writeErrorMsg(w, r, ErrInvalidJSON, app.MsgTableIDRequired)
		return
	}

	qrURL, err := h.services.AdminService.GenerateQR(ctx, req.TableID, requestBaseURL(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("table_id", int64(req.TableID)).Msg("QR link generated")
	_, _ = utils.WriteJSON(w, models.QRResponse{Ok: true, QRURL: qrURL}, http.StatusOK)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.services.CredentialService.ListTables(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DataResponse[models.TableView]{Ok: true, Data: tables}, http.StatusOK)
}

func (h *Handler) saveTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SaveTableRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	table, err := h.services.CredentialService.SaveTable(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("table_id", int64(table.ID)).Msg("table saved")
	_, _ = utils.WriteJSON(w, models.Response{Ok: true}, http.StatusOK)
}

// requestBaseURL derives the public origin from the request. The scheme is
// taken from X-Forwarded-Proto when a proxy terminates TLS.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
