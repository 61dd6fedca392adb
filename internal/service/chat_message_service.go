package service

import (
	"chat-relay-server/internal/domain"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrChatRoomResolution reports that create-if-absent resolution produced no
// chat id. By construction this is unreachable; it is surfaced rather than
// masked so an invariant violation is never mistaken for an empty result.
var ErrChatRoomResolution = errors.New("chat room resolution produced no chat id")

// ChatMessageService persists chat messages and serves conversation history.
type ChatMessageService struct {
	chatRoomService IChatRoomService
	messageRepo     IChatMessageRepository
}

// NewChatMessageService creates a new ChatMessageService.
func NewChatMessageService(chatRoomService IChatRoomService, messageRepo IChatMessageRepository) *ChatMessageService {
	return &ChatMessageService{chatRoomService: chatRoomService, messageRepo: messageRepo}
}

// Save resolves the message's conversation (creating it on first contact),
// stamps the message with the chat id and persists it. The message is durable
// when Save returns without error.
func (s *ChatMessageService) Save(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	chatID, ok, err := s.chatRoomService.GetChatRoomID(message.SenderID, message.RecipientID, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChatRoomResolution
	}

	message.ChatID = chatID
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	if err := s.messageRepo.SaveMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// FindChatMessages returns the ordered history of the pair's conversation.
// No conversation yet means an empty history, not an error.
func (s *ChatMessageService) FindChatMessages(ctx context.Context, senderID, recipientID string) ([]*domain.ChatMessage, error) {
	chatID, ok, err := s.chatRoomService.GetChatRoomID(senderID, recipientID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*domain.ChatMessage{}, nil
	}
	return s.messageRepo.FindByChatID(ctx, chatID)
}
