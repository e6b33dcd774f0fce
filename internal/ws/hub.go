package ws

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type envelope struct {
	accountID uuid.UUID
	payload   []byte
}

// Hub fans notification payloads out to the websocket connections of a
// specific account. An account may hold several connections at once.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	send       chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		send:       make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			conns := h.clients[client.accountID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.accountID] = conns
			}
			conns[client] = true
			total := h.totalLocked()
			h.mutex.Unlock()
			h.logger.Info("ws connected",
				zap.String("account_id", client.accountID.String()),
				zap.Int("total_clients", total),
			)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if conns, ok := h.clients[client.accountID]; ok && conns[client] {
				delete(conns, client)
				if len(conns) == 0 {
					delete(h.clients, client.accountID)
				}
				close(client.send)
			}
			total := h.totalLocked()
			h.mutex.Unlock()
			h.logger.Info("ws disconnected",
				zap.String("account_id", client.accountID.String()),
				zap.Int("total_clients", total),
			)

		case env := <-h.send:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[env.accountID]))
			for c := range h.clients[env.accountID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- env.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendTo queues a payload for every connection of the account. Dropped when
// the hub buffer is full rather than blocking the caller.
func (h *Hub) SendTo(accountID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.send <- envelope{accountID: accountID, payload: payload}:
	default:
		h.logger.Warn("ws send dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.totalLocked()
}

func (h *Hub) totalLocked() int {
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}
