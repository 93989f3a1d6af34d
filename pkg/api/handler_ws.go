package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/patchwork-dev/patchwork/pkg/events"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard sits behind the same auth proxy as the REST API, and the
	// stream carries nothing a GET on the API would not. Origin checks would
	// only break local dashboard development.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsHandler handles GET /ws. Clients pick channels with repeated ?channel=
// params ("requests" or "request:<id>"); no channel means the global
// request feed.
func (s *Server) wsHandler(c *gin.Context) {
	channels := c.QueryArray("channel")
	if len(channels) == 0 {
		channels = []string{events.GlobalRequestsChannel}
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}

	client := &wsClient{
		conn:     conn,
		send:     make(chan []byte, wsSendBuffer),
		channels: channels,
	}
	s.hub.add(c.Request.Context(), client)

	go client.writePump()
	client.readPump(func() { s.hub.remove(client) })
}
