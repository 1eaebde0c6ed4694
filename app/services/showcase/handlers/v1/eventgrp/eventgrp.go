// Package eventgrp maintains the websocket feed of calculation events.
package eventgrp

import (
	"context"
	"net/http"
	"time"

	"github.com/ardanlabs/scalability/foundation/events"
	"github.com/ardanlabs/scalability/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// pingInterval is how often an idle connection is checked.
const pingInterval = time.Second

// Handlers manages the event feed endpoint.
type Handlers struct {
	Log  *zap.SugaredLogger
	WS   websocket.Upgrader
	Evts *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	// A failed upgrade has already written its response.
	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		web.SetStatusCode(ctx, http.StatusBadRequest)
		h.Log.Infow("events", "traceid", v.TraceID, "status", "upgrade failed", "ERROR", err)
		return nil
	}
	defer c.Close()

	// The upgrade has taken over the connection.
	web.SetStatusCode(ctx, http.StatusSwitchingProtocols)

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	h.Log.Infow("events", "traceid", v.TraceID, "status", "subscribed", "subscribers", h.Evts.Subscribers())

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case evt, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteJSON(evt); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
