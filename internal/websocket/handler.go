// Package websocket streams live active-list snapshots to connected
// clients. Fan-out happens per household in the store's subscription
// layer; each connection holds exactly one subscription, released when
// the connection ends for any reason.
package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	ws "github.com/coder/websocket"
	"github.com/gustavor29/Tablon/internal/model"
	"github.com/gustavor29/Tablon/internal/store"
)

const pingInterval = 30 * time.Second

// HandleList returns an HTTP handler that upgrades the connection and
// writes a JSON snapshot frame for every observed change to the
// household's list, until the client disconnects or the subscription
// fails.
func HandleList(lists *store.ListStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID := r.PathValue("id")

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // Allow connections from any origin (household LAN)
		})
		if err != nil {
			logger.Error("websocket accept", "error", err)
			return
		}
		defer conn.Close(ws.StatusInternalError, "")

		// No inbound messages are expected; CloseRead pumps the read side
		// and cancels the context when the client goes away.
		ctx := conn.CloseRead(r.Context())

		sub := lists.Subscribe(ctx, householdID)
		defer sub.Close()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case items, ok := <-sub.Snapshots():
				if !ok {
					if err := sub.Err(); err != nil {
						logger.Error("list subscription", "household_id", householdID, "error", err)
						conn.Close(ws.StatusInternalError, "subscription failed")
						return
					}
					conn.Close(ws.StatusNormalClosure, "")
					return
				}
				if items == nil {
					items = []model.Item{}
				}
				data, err := json.Marshal(items)
				if err != nil {
					logger.Error("marshal snapshot", "error", err)
					return
				}
				if err := conn.Write(ctx, ws.MessageText, data); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.Ping(ctx); err != nil {
					return
				}
			case <-ctx.Done():
				conn.Close(ws.StatusNormalClosure, "")
				return
			}
		}
	}
}
