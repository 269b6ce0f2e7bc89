package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"freelance-market-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// wsClient implements realtime.Client by wrapping a websocket connection.
// Room broadcasts fan in from other clients' read loops and from HTTP
// handlers, and gorilla conns allow only one writer at a time, so the
// mutex serializes the deadline+write pair. WriteControl in the ping
// goroutine is safe concurrently with this and needs no lock.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) Send(message []byte) bool {
	if c == nil || c.conn == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return false
	}
	return true
}

func (c *wsClient) Close() {
	if c != nil && c.conn != nil {
		_ = c.conn.Close()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is already handled at Gin level; allow upgrade from any origin here
		return true
	},
}

// intentRequest is the client-to-server message: an action name plus the
// target entity id.
type intentRequest struct {
	Action       string `json:"action"`
	ProjectID    string `json:"projectId"`
	FreelancerID string `json:"freelancerId"`
}

// intentHandlers maps action names to coordinator calls. Built once; the
// read loop only does a table lookup per message.
var intentHandlers = map[string]func(ctx context.Context, rt *realtime.PresenceCoordinator, connID string, req intentRequest){
	"join_project": func(ctx context.Context, rt *realtime.PresenceCoordinator, connID string, req intentRequest) {
		rt.OnJoin(ctx, connID, realtime.ProjectRoom(req.ProjectID))
	},
	"leave_project": func(ctx context.Context, rt *realtime.PresenceCoordinator, connID string, req intentRequest) {
		rt.OnLeave(connID, realtime.ProjectRoom(req.ProjectID))
	},
	"join_freelancer": func(ctx context.Context, rt *realtime.PresenceCoordinator, connID string, req intentRequest) {
		rt.OnJoin(ctx, connID, realtime.FreelancerRoom(req.FreelancerID))
	},
	"leave_freelancer": func(ctx context.Context, rt *realtime.PresenceCoordinator, connID string, req intentRequest) {
		rt.OnLeave(connID, realtime.FreelancerRoom(req.FreelancerID))
	},
}

// WebSocketHandler upgrades the connection and runs the realtime session.
// It requires JWT middleware to have set "user_id" in context.
func WebSocketHandler(rt *realtime.PresenceCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
			return
		}

		// Upgrade HTTP connection to WebSocket
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade error:", err)
			return
		}

		connID := uuid.NewString()
		client := &wsClient{conn: conn}
		rt.OnConnect(connID, client)

		// Heartbeat: send periodic pings; close on error
		pingTicker := time.NewTicker(30 * time.Second)
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-done:
					return
				case <-pingTicker.C:
					if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
						// ping failed; reader loop will exit on next error
						return
					}
				}
			}
		}()
		defer func() {
			close(done)
			pingTicker.Stop()
			rt.OnDisconnect(connID)
			client.Close()
		}()

		// Reader loop: dispatch intents and keep connection alive via pong handler
		conn.SetReadLimit(1024)
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})

		ctx := c.Request.Context()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				// Normal close or error; exit loop
				return
			}

			var req intentRequest
			if err := json.Unmarshal(message, &req); err != nil {
				log.Println("websocket bad intent:", err)
				continue
			}

			handler, ok := intentHandlers[req.Action]
			if !ok {
				log.Println("websocket unknown action:", req.Action)
				continue
			}
			handler(ctx, rt, connID, req)
		}
	}
}
