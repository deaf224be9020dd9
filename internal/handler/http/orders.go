package http

import (
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.services.OrderService.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DataResponse[models.Order]{Ok: true, Data: orders}, http.StatusOK)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.OrderService.Summary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DataResponse[models.ItemSummary]{Ok: true, Data: items}, http.StatusOK)
}
