package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"

	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
	"github.com/Ko-stant/dungeon-layout-engine/internal/ws"
)

// StreamHandler upgrades /stream?level=<id> to a websocket. The client gets
// the current snapshot first, then every patch for that level.
func StreamHandler(hub *ws.Hub, store LevelStore, handlers *Handlers, logger Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		levelID := r.URL.Query().Get("level")
		if _, err := store.Get(levelID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		if err := subscribe(context.Background(), hub, store, levelID, conn); err != nil {
			logger.Printf("stream %s: hello failed: %v", levelID, err)
			hub.Remove(levelID, conn)
			_ = conn.Close(websocket.StatusInternalError, "hello failed")
			return
		}

		go func(c *websocket.Conn) {
			defer hub.Remove(levelID, c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				if err := handlers.HandleWebSocketMessage(levelID, data); err != nil {
					logger.Printf("stream %s: %v", levelID, err)
				}
			}
		}(conn)
	}
}

// subscribe writes the hello snapshot and only then joins conn to the level's
// broadcasts, so no patch can reach the client ahead of it. An edit that lands
// between the hello and the join is covered by a second snapshot.
func subscribe(ctx context.Context, hub *ws.Hub, store LevelStore, levelID string, conn ws.Conn) error {
	snap, err := store.Get(levelID)
	if err != nil {
		return err
	}
	if err := writeSnapshot(ctx, conn, snap); err != nil {
		return err
	}
	hub.Add(levelID, conn)

	latest, err := store.Get(levelID)
	if err != nil || latest.Revision == snap.Revision {
		return nil
	}
	return writeSnapshot(ctx, conn, latest)
}

func writeSnapshot(ctx context.Context, conn ws.Conn, snap *session.Snapshot) error {
	hello, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: 0,
		Type:     "Snapshot",
		Payload:  protocol.NewSnapshot(snap),
	})
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, hello)
}
