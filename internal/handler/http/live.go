package http

import (
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/logger"
)

// liveOrders upgrades the admin connection and streams order updates until
// the client leaves or the server shuts down.
func (h *Handler) liveOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	log.Debug().Msg("live subscriber connected")
	h.live.Serve(r.Context(), conn)
	log.Debug().Msg("live subscriber disconnected")
}
