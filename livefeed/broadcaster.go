package livefeed

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/kaienlin/tcgsim/simulator"
)

// writeWait bounds how long Publish waits for a single client's write to
// complete before giving up on that tick, mirroring the teacher server's
// own writeWait/closeGracePeriod budget.
const (
	writeWait        = 1 * time.Second
	closeGracePeriod = 1 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wireVehicle is the JSON shape pushed to clients for one vehicle.
type wireVehicle struct {
	ID            string `json:"id"`
	PositionIndex int    `json:"position_index"`
	CurCZ         string `json:"cur_cz"`
	State         string `json:"state"`
}

// wireObservation is the JSON shape pushed to clients per Publish call.
type wireObservation struct {
	Timestamp int64         `json:"timestamp"`
	Vehicles  []wireVehicle `json:"vehicles"`
}

// Broadcaster serves a websocket endpoint and pushes every published
// simulator.Observation to all currently connected clients. The zero
// value is not usable; construct with NewBroadcaster.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewBroadcaster constructs an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[*websocket.Conn]struct{})}
}

// Handler returns the http.Handler that upgrades a request to a
// websocket and registers it as a subscriber until it disconnects.
func (b *Broadcaster) Handler() http.Handler {
	return http.HandlerFunc(b.serveWebsocket)
}

func (b *Broadcaster) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("livefeed: upgrade failed")
		return
	}

	b.mu.Lock()
	b.clients[conn] = struct{}{}
	b.mu.Unlock()

	log.Info().Msg("livefeed: client connected")

	// Drain and discard inbound messages until the client disconnects;
	// this is a push-only feed, but gorilla/websocket requires reads to
	// notice a peer-initiated close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	b.removeClient(conn)
}

func (b *Broadcaster) removeClient(conn *websocket.Conn) {
	b.mu.Lock()
	delete(b.clients, conn)
	b.mu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	_ = conn.Close()
	log.Info().Msg("livefeed: client disconnected")
}

// Publish encodes obs and writes it to every connected client. A client
// whose write fails or times out is dropped rather than blocking the
// caller's stepping loop.
func (b *Broadcaster) Publish(obs simulator.Observation) {
	wire := wireObservation{Timestamp: obs.Timestamp}
	for _, v := range obs.Vehicles {
		wire.Vehicles = append(wire.Vehicles, wireVehicle{
			ID:            v.ID,
			PositionIndex: v.PositionIndex,
			CurCZ:         v.CurCZ(),
			State:         v.State.String(),
		})
	}

	b.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for c := range b.clients {
		conns = append(conns, c)
	}
	b.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(wire); err != nil {
			log.Warn().Err(err).Msg("livefeed: publish failed, dropping client")
			b.removeClient(conn)
		}
	}
}

// ListenAndServe starts an HTTP server bound to addr serving the
// websocket endpoint at /ws, shutting down gracefully when ctx is
// cancelled.
func (b *Broadcaster) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", b.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
