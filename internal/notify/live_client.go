package notify

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/gorilla/websocket"
)

// Live connection timings.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	// admins never send anything meaningful
	maxClientMessage = 512
)

// Serve pumps hub frames to conn until the client goes away, falls behind
// or ctx is cancelled. It always closes conn.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn) {
	log := logger.FromContext(ctx)
	sub := h.Subscribe()
	defer h.Unsubscribe(sub)
	defer conn.Close()

	gone := make(chan struct{})
	go readPump(conn, gone)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			writeClose(conn, websocket.CloseGoingAway, "server shutting down")
			return
		case <-h.done:
			writeClose(conn, websocket.CloseGoingAway, "server shutting down")
			return
		case <-gone:
			return
		case frame, ok := <-sub.Frames():
			if !ok {
				select {
				case <-h.done:
					writeClose(conn, websocket.CloseGoingAway, "server shutting down")
				default:
					writeClose(conn, websocket.ClosePolicyViolation, "too slow")
				}
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Debug().Err(err).Msg("live write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages and signals when the connection ends.
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetReadLimit(maxClientMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
