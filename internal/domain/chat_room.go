package domain

import (
	"github.com/google/uuid"
)

// ChatRoom is one directional record of a conversation. Every unordered pair
// of users has two rows, (sender, recipient) and (recipient, sender), sharing
// the same ChatID, so a lookup from either side resolves in a single query.
type ChatRoom struct {
	ID          uuid.UUID `json:"id"`
	ChatID      string    `json:"chatId"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
}

// NewChatRoom creates one directional chat room record.
func NewChatRoom(chatID, senderID, recipientID string) *ChatRoom {
	return &ChatRoom{
		ID:          uuid.New(),
		ChatID:      chatID,
		SenderID:    senderID,
		RecipientID: recipientID,
	}
}
