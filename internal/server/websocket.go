package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"theologai/internal/logging"
)

const (
	wsMaxMessageSize = 1 << 20
	wsReadTimeout    = 5 * time.Minute
	wsWriteTimeout   = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler upgrades each connection to a websocket and answers JSON-RPC
// requests message by message until the client disconnects.
func WSHandler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Error("websocket_upgrade_failed", "error", err.Error())
			return
		}
		defer conn.Close()

		conn.SetReadLimit(wsMaxMessageSize)
		logging.Info("websocket_connected", "remote", r.RemoteAddr)

		ctx := r.Context()
		for {
			conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logging.Warn("websocket_read_failed", "error", err.Error())
				}
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}

			resp := reg.Dispatch(ctx, msg)
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, resp); err != nil {
				logging.Warn("websocket_write_failed", "error", err.Error())
				return
			}
		}
	})
}

// ServeWS runs an HTTP server exposing the JSON-RPC websocket at /ws and
// a liveness check at /healthz, shutting down when ctx is cancelled.
func ServeWS(ctx context.Context, reg *Registry, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", WSHandler(reg))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	logging.ServerStartup("websocket", "addr", addr)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
