package hub

import (
	"chat-relay-server/internal/domain"
	"chat-relay-server/internal/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ClientRequest bundles a client with their incoming message.
type ClientRequest struct {
	Client  *Client
	Message domain.WebSocketMessage
}

// Hub maintains the set of active clients, routes chat messages to the
// recipient's private channel and broadcasts presence changes to everyone.
type Hub struct {
	connections    map[*Client]bool
	presentClients map[string]*Client // nickname -> client
	messages       chan *ClientRequest
	register       chan *Client
	unregister     chan *Client
	routes         map[string]func(*ClientRequest)
	userService    service.IUserService
	messageService service.IChatMessageService
	logger         *zap.Logger
}

func NewHub(userService service.IUserService, messageService service.IChatMessageService, logger *zap.Logger) *Hub {
	h := &Hub{
		connections:    make(map[*Client]bool),
		presentClients: make(map[string]*Client),
		messages:       make(chan *ClientRequest),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		userService:    userService,
		messageService: messageService,
		logger:         logger,
	}
	// Explicit routing table: frame type -> handler.
	h.routes = map[string]func(*ClientRequest){
		domain.TypeAddUser:        h.handleAddUser,
		domain.TypeDisconnectUser: h.handleDisconnectUser,
		domain.TypeChat:           h.handleChat,
	}
	return h
}

// Run is the hub's main loop. All client maps are touched only from here.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.connections[client] = true
		case client := <-h.unregister:
			if _, ok := h.connections[client]; ok {
				h.dropPresence(client)
				delete(h.connections, client)
				close(client.Send)
			}
		case request := <-h.messages:
			h.dispatch(request)
		}
	}
}

// ServeWs registers a new connection and starts its pumps.
func (h *Hub) ServeWs(conn *websocket.Conn) {
	client := &Client{Hub: h, Conn: conn, Send: make(chan []byte, 256)}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

func (h *Hub) dispatch(req *ClientRequest) {
	handler, ok := h.routes[req.Message.Type]
	if !ok {
		req.Client.sendError(fmt.Sprintf("Unknown message type: %s", req.Message.Type))
		return
	}
	if req.Message.Type != domain.TypeAddUser && req.Client.Identity == nil {
		req.Client.sendError("Identification required.")
		return
	}
	handler(req)
}

func (h *Hub) handleAddUser(req *ClientRequest) {
	var payload domain.ConnectPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil || payload.Nickname == "" {
		req.Client.sendError("Invalid user payload.")
		return
	}

	// A client re-identifying under a different nickname gives up the old one
	// first, so no presence entry keeps pointing at this connection after it
	// goes away.
	if req.Client.Identity != nil && req.Client.Identity.Nickname != payload.Nickname {
		h.dropPresence(req.Client)
		req.Client.Identity = nil
	}

	user, err := h.userService.SaveUser(&domain.User{Nickname: payload.Nickname, FullName: payload.FullName})
	if err != nil {
		h.logger.Error("failed to mark user online", zap.String("nickname", payload.Nickname), zap.Error(err))
		req.Client.sendError("Could not register presence.")
		return
	}

	if existing, ok := h.presentClients[user.Nickname]; ok && existing != req.Client {
		existing.sendError("You have been connected from another location.")
		existing.Identity = nil
	}
	req.Client.Identity = &Identity{Nickname: user.Nickname, FullName: user.FullName}
	h.presentClients[user.Nickname] = req.Client

	h.logger.Info("user connected", zap.String("nickname", user.Nickname))
	h.broadcastPresence(user)
}

func (h *Hub) handleDisconnectUser(req *ClientRequest) {
	nickname := req.Client.Identity.Nickname
	if h.presentClients[nickname] == req.Client {
		delete(h.presentClients, nickname)
	}
	req.Client.Identity = nil

	user, err := h.userService.Disconnect(&domain.User{Nickname: nickname})
	if err != nil {
		h.logger.Error("failed to mark user offline", zap.String("nickname", nickname), zap.Error(err))
		req.Client.sendError("Could not update presence.")
		return
	}

	h.logger.Info("user disconnected", zap.String("nickname", nickname))
	h.broadcastPresence(user)
}

func (h *Hub) handleChat(req *ClientRequest) {
	var payload domain.SendChatPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil || payload.RecipientID == "" {
		req.Client.sendError("Invalid chat payload.")
		return
	}

	message := &domain.ChatMessage{
		SenderID:    req.Client.Identity.Nickname,
		RecipientID: payload.RecipientID,
		Content:     payload.Content,
	}
	stored, err := h.messageService.Save(context.Background(), message)
	if err != nil {
		h.logger.Error("failed to store chat message",
			zap.String("sender", message.SenderID),
			zap.String("recipient", message.RecipientID),
			zap.Error(err))
		req.Client.sendError("Message could not be delivered.")
		return
	}

	notification := domain.ChatNotification{
		ID:          stored.ID.Hex(),
		SenderID:    stored.SenderID,
		RecipientID: stored.RecipientID,
		Content:     stored.Content,
	}
	// Fire-and-forget push: a recipient without an active session simply
	// misses the notification. The message is already durable.
	h.deliverTo(stored.RecipientID, domain.WebSocketMessage{Type: domain.TypeNewMessage, Payload: notification})
}

// deliverTo hands a frame to one recipient's private channel.
func (h *Hub) deliverTo(nickname string, frame domain.WebSocketMessage) {
	recipient, ok := h.presentClients[nickname]
	if !ok {
		h.logger.Debug("recipient not connected, dropping notification", zap.String("recipient", nickname))
		return
	}
	msg, err := json.Marshal(frame)
	if err != nil {
		return
	}
	select {
	case recipient.Send <- msg:
	default:
		h.logger.Warn("recipient send buffer full, dropping notification", zap.String("recipient", nickname))
	}
}

// broadcastPresence publishes the updated user to the shared public channel,
// best-effort with no replay for absent subscribers.
func (h *Hub) broadcastPresence(user *domain.User) {
	msg, err := json.Marshal(domain.WebSocketMessage{Type: domain.TypePresence, Payload: user})
	if err != nil {
		return
	}
	for client := range h.connections {
		select {
		case client.Send <- msg:
		default:
			// Slow subscriber, skip it. Presence events have no replay.
		}
	}
}

// dropPresence releases the client's presence entry and marks the user
// OFFLINE, broadcasting the change. Covers a socket closing without an
// explicit disconnect frame and a client re-identifying under a new nickname.
func (h *Hub) dropPresence(client *Client) {
	if client.Identity == nil {
		return
	}
	nickname := client.Identity.Nickname
	if h.presentClients[nickname] != client {
		return
	}
	delete(h.presentClients, nickname)

	user, err := h.userService.Disconnect(&domain.User{Nickname: nickname})
	if err != nil {
		h.logger.Error("failed to mark user offline on close", zap.String("nickname", nickname), zap.Error(err))
		return
	}
	h.broadcastPresence(user)
}

func parsePayload(payload interface{}, result interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.New("failed to marshal payload")
	}
	return json.Unmarshal(payloadBytes, result)
}
