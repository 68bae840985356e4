package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/domain"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// feedBatch is how many of the newest rounds each poll looks at. More new
// rounds than this per interval are not all streamed.
const feedBatch = 50

var FeedClients = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "round_feed_clients",
	Help: "Connected round feed subscribers",
})

func init() {
	prometheus.MustRegister(FeedClients)
}

// RoundSource lists archived rounds, newest first.
type RoundSource interface {
	Recent(ctx context.Context, limit int) ([]*domain.Round, error)
}

// Hub polls the archive and fans new rounds out to every subscriber.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}

	source   RoundSource
	interval time.Duration

	// IDs of the last batch; anything outside it is older
	seen   map[uuid.UUID]struct{}
	primed bool
}

func NewHub(source RoundSource, interval time.Duration) *Hub {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Hub{
		clients:  make(map[*Client]struct{}),
		source:   source,
		interval: interval,
		seen:     make(map[uuid.UUID]struct{}),
	}
}

// Run polls until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			h.Poll(ctx)
		}
	}
}

// Poll fetches the newest rounds and broadcasts the ones not seen before,
// oldest first. The first poll only records what is already archived.
func (h *Hub) Poll(ctx context.Context) {
	rounds, err := h.source.Recent(ctx, feedBatch)
	if err != nil {
		logger.Warn("round feed poll failed", "error", err)
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(rounds))
	var fresh []*domain.Round
	for _, r := range rounds {
		seen[r.ID] = struct{}{}
		if _, ok := h.seen[r.ID]; !ok {
			fresh = append(fresh, r)
		}
	}
	h.seen = seen

	if !h.primed {
		h.primed = true
		return
	}
	for i := len(fresh) - 1; i >= 0; i-- {
		ok, err := fresh[i].Verify()
		if err != nil {
			logger.Warn("archived round does not verify", "round_id", fresh[i].ID, "error", err)
		}
		h.Broadcast(Envelope{Type: MsgRound, Payload: RoundPayload{Round: fresh[i], Verified: ok}})
	}
}

// Broadcast queues msg for every subscriber. Subscribers that can not keep up
// are dropped.
func (h *Hub) Broadcast(msg Envelope) {
	b, err := json.Marshal(msg)
	if err != nil {
		logger.Error("marshal feed message", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.Send <- b:
		default:
			logger.Debug("round feed client too slow, dropping", "client", c.ID)
			h.removeLocked(c)
		}
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	FeedClients.Inc()
	logger.Debug("round feed client joined", "client", c.ID, "clients", n)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// Len returns the number of subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) removeLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.Send)
	FeedClients.Dec()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}
