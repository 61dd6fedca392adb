package handler

import (
	"chat-relay-server/internal/hub"
	"chat-relay-server/internal/service"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler exposes the websocket endpoint and the REST query endpoints.
type Handler struct {
	hub            *hub.Hub
	messageService service.IChatMessageService
	userService    service.IUserService
	logger         *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(h *hub.Hub, messageService service.IChatMessageService, userService service.IUserService, logger *zap.Logger) *Handler {
	return &Handler{
		hub:            h,
		messageService: messageService,
		userService:    userService,
		logger:         logger,
	}
}

// Register wires the routes into the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/ws", h.HandleConnection).Methods(http.MethodGet)
	r.HandleFunc("/messages/{senderId}/{recipientId}", h.FindChatMessages).Methods(http.MethodGet)
	r.HandleFunc("/users", h.FindConnectedUsers).Methods(http.MethodGet)
}

// HandleConnection upgrades the request and hands the connection to the hub.
// The client identifies itself afterwards with a 'user.addUser' frame.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.ServeWs(conn)
}

// FindChatMessages serves the ordered history of a conversation. A pair with
// no conversation yet yields an empty list, not an error.
func (h *Handler) FindChatMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messages, err := h.messageService.FindChatMessages(r.Context(), vars["senderId"], vars["recipientId"])
	if err != nil {
		h.logger.Error("failed to load chat history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load chat history")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// FindConnectedUsers serves the roster of ONLINE users.
func (h *Handler) FindConnectedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.FindConnectedUsers()
	if err != nil {
		h.logger.Error("failed to load connected users", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load connected users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
