package domain

import "time"

// WebSocketMessage is the standard envelope for client/server frames.
type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Inbound frame types handled by the hub's routing table.
const (
	TypeAddUser        = "user.addUser"
	TypeDisconnectUser = "user.disconnectUser"
	TypeChat           = "chat"
)

// Outbound frame types emitted by the hub.
const (
	TypeNewMessage   = "new_message"
	TypePresence     = "user.presence"
	TypeErrorMessage = "error_message"
)

// ConnectPayload is the payload of a 'user.addUser' frame.
type ConnectPayload struct {
	Nickname string `json:"nickName"`
	FullName string `json:"fullName"`
}

// SendChatPayload is the payload of a 'chat' frame.
type SendChatPayload struct {
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

// SystemPayload is the payload of an 'error_message' frame.
type SystemPayload struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
