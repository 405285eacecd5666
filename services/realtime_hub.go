package services

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"fitledger/models"
)

// WSClient is one connected websocket listener.
type WSClient struct {
	ID   string // assigned at upgrade time
	Conn *websocket.Conn
}

// RealtimeHub fans ledger updates out to connected websocket clients so
// every open view stays in sync without polling. Delivery is best-effort:
// a client that is not connected simply re-reads the tracker on its next
// mount.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]*WSClient
	logger  *slog.Logger
}

func NewRealtimeHub(logger *slog.Logger) *RealtimeHub {
	if logger == nil {
		logger = slog.Default()
	}
	return &RealtimeHub{clients: make(map[string]*WSClient), logger: logger}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c.ID)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastLedgerUpdate pushes the updated record to every client. Write
// errors are logged and otherwise ignored; the read loop notices the dead
// connection and unregisters it.
func (h *RealtimeHub) BroadcastLedgerUpdate(rec *models.DailyLedgerRecord) {
	msg, err := json.Marshal(map[string]any{
		"kind":   "ledger.updated",
		"record": rec,
	})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("websocket write failed", "client", c.ID, "error", err)
		}
	}
}
