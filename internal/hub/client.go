package hub

import (
	"chat-relay-server/internal/domain"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Identity is the user bound to a connection after a 'user.addUser' frame.
type Identity struct {
	Nickname string
	FullName string
}

// Client is the middleman between a websocket connection and the hub.
type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Identity *Identity
	Send     chan []byte
}

// readPump reads frames from the websocket connection into the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		var req domain.WebSocketMessage
		if err := c.Conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.Hub.logger.Debug("readPump closed", zap.Error(err))
			}
			break
		}
		c.Hub.messages <- &ClientRequest{Client: c, Message: req}
	}
}

// writePump forwards the Send channel to the websocket connection.
func (c *Client) writePump() {
	defer func() {
		c.Conn.Close()
	}()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// sendError delivers an error frame to this client without blocking.
func (c *Client) sendError(content string) {
	payload := domain.SystemPayload{
		Content:   content,
		Timestamp: time.Now(),
	}
	msg, err := json.Marshal(domain.WebSocketMessage{Type: domain.TypeErrorMessage, Payload: payload})
	if err != nil {
		return
	}
	// The channel may be full (slow client); drop rather than block. Closed
	// clients are unreachable here because the hub removes a client from its
	// maps before closing the channel.
	select {
	case c.Send <- msg:
	default:
	}
}
