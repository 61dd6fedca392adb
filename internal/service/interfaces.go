package service

import (
	"chat-relay-server/internal/domain"
	"context"
)

// --- Service Interfaces ---

// IChatRoomService resolves an unordered pair of users to their conversation.
type IChatRoomService interface {
	// GetChatRoomID returns the chat id for (senderID, recipientID). When no
	// conversation exists and createIfAbsent is false the second return value
	// is false; with createIfAbsent true the conversation is created first.
	GetChatRoomID(senderID, recipientID string, createIfAbsent bool) (string, bool, error)
}

// IChatMessageService defines message persistence and history retrieval.
type IChatMessageService interface {
	Save(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	FindChatMessages(ctx context.Context, senderID, recipientID string) ([]*domain.ChatMessage, error)
}

// IUserService defines the presence registry.
type IUserService interface {
	SaveUser(user *domain.User) (*domain.User, error)
	Disconnect(user *domain.User) (*domain.User, error)
	FindConnectedUsers() ([]*domain.User, error)
}

// --- Repository Interfaces ---

// IUserRepository defines the interface for user persistence.
type IUserRepository interface {
	SaveUser(user *domain.User) error
	GetUserByNickname(nickname string) (*domain.User, error)
	FindAllByStatus(status domain.Status) ([]*domain.User, error)
}

// IChatRoomRepository defines the interface for chat room persistence.
type IChatRoomRepository interface {
	FindBySenderAndRecipient(senderID, recipientID string) (*domain.ChatRoom, error)
	// CreateChatRoomPair persists both directional records atomically and
	// returns the chat id observable afterwards, which is the already-stored
	// one when a concurrent creation won the race.
	CreateChatRoomPair(senderRoom, recipientRoom *domain.ChatRoom) (string, error)
}

// IChatMessageRepository defines the interface for message persistence.
type IChatMessageRepository interface {
	SaveMessage(ctx context.Context, message *domain.ChatMessage) error
	FindByChatID(ctx context.Context, chatID string) ([]*domain.ChatMessage, error)
}
