package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// Envelope types of the /ws/orders protocol. The client subscribes to a
// store and receives order snapshots on a fixed interval:
//
//	client: {"type": "subscribe", "payload": {"store_id": "store_1"}}
//	server: {"type": "orders", "payload": {"store_id": "store_1", "orders": [...]}}
//	server: {"type": "error", "payload": {"detail": "..."}}
const (
	wsTypeSubscribe = "subscribe"
	wsTypeOrders    = "orders"
	wsTypeError     = "error"
)

type wsClientEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type wsServerEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// OrdersFeed upgrades the connection and streams order snapshots for the
// subscribed store until the client disconnects
func OrdersFeed(client mockapi.Client, cfg *config.Config) http.Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// The browser dashboard connects cross-origin; the feed is
		// read-only store data, so any origin may subscribe.
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("ws: upgrade failed")
			return
		}

		feed := &ordersFeed{
			conn:     conn,
			client:   client,
			interval: cfg.WebSocket.PushInterval(),
			logger:   logger,
		}
		feed.run(r.Context())
	})
}

type ordersFeed struct {
	conn     *websocket.Conn
	client   mockapi.Client
	interval time.Duration
	logger   log.Logger
}

func (f *ordersFeed) run(ctx context.Context) {
	defer f.conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	subscriptions := make(chan string, 1)
	protocolErrors := make(chan string, 4)

	go f.readLoop(cancel, subscriptions, protocolErrors)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	var storeID string

	for {
		select {
		case <-ctx.Done():
			return
		case storeID = <-subscriptions:
			f.logger.WithField("store_id", storeID).Info("ws: client subscribed")
			if err := f.push(ctx, storeID); err != nil {
				return
			}
		case detail := <-protocolErrors:
			if err := f.write(wsTypeError, map[string]any{"detail": detail}); err != nil {
				return
			}
		case <-ticker.C:
			if storeID == "" {
				continue
			}
			if err := f.push(ctx, storeID); err != nil {
				return
			}
		}
	}
}

// readLoop consumes client envelopes; any read error ends the connection
func (f *ordersFeed) readLoop(cancel context.CancelFunc, subscriptions chan<- string, protocolErrors chan<- string) {
	defer cancel()

	for {
		var envelope wsClientEnvelope
		if err := f.conn.ReadJSON(&envelope); err != nil {
			return
		}

		switch envelope.Type {
		case wsTypeSubscribe:
			payload, _ := envelope.Payload.(map[string]any)
			storeID, _ := payload["store_id"].(string)
			if storeID == "" {
				protocolErrors <- "subscribe requires payload.store_id"
				continue
			}
			subscriptions <- storeID
		default:
			protocolErrors <- fmt.Sprintf("unknown message type: %q", envelope.Type)
		}
	}
}

// push sends one order snapshot; upstream failures become error envelopes
// while write failures end the connection
func (f *ordersFeed) push(ctx context.Context, storeID string) error {
	payload, err := f.client.StoreOrders(ctx, storeID)
	if err != nil {
		f.logger.WithFields(log.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Warn("ws: order fetch failed")
		return f.write(wsTypeError, map[string]any{"detail": err.Error()})
	}

	return f.write(wsTypeOrders, map[string]any{
		"store_id": storeID,
		"orders":   mockapi.Records(payload, mockapi.WrapperOrders),
	})
}

func (f *ordersFeed) write(envelopeType string, payload any) error {
	if err := f.conn.WriteJSON(wsServerEnvelope{Type: envelopeType, Payload: payload}); err != nil {
		f.logger.WithError(err).Debug("ws: write failed, closing connection")
		return err
	}
	return nil
}
