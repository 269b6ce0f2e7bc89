package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Send fans in from other clients' read loops and from HTTP handlers, so it
// must hold up under concurrent callers without corrupting frames.
func TestWsClient_ConcurrentSend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientCh := make(chan *wsClient, 1)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		clientCh <- &wsClient{conn: conn}
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	dialed, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer dialed.Close()

	client := <-clientCh
	defer client.Close()

	const writers = 32
	const perWriter = 20

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				payload, _ := json.Marshal(map[string]int{"writer": n, "seq": j})
				if !client.Send(payload) {
					t.Errorf("send failed for writer %d seq %d", n, j)
					return
				}
			}
		}(i)
	}

	// Every frame must arrive intact and parseable
	received := make(map[string]struct{})
	for i := 0; i < writers*perWriter; i++ {
		_, msg, err := dialed.ReadMessage()
		require.NoError(t, err)
		var frame struct {
			Writer int `json:"writer"`
			Seq    int `json:"seq"`
		}
		require.NoError(t, json.Unmarshal(msg, &frame))
		received[fmt.Sprintf("%d:%d", frame.Writer, frame.Seq)] = struct{}{}
	}
	wg.Wait()
	require.Len(t, received, writers*perWriter)
}
