package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage represents a single message in a conversation, stored in MongoDB.
// Messages are immutable once persisted.
type ChatMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID      string             `bson:"chat_id" json:"chatId"`
	SenderID    string             `bson:"sender_id" json:"senderId"`
	RecipientID string             `bson:"recipient_id" json:"recipientId"`
	Content     string             `bson:"content" json:"content"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatNotification is the wire projection of a stored message pushed to the
// recipient's private channel. It is never persisted, so the push shape can
// evolve independently of the storage schema.
type ChatNotification struct {
	ID          string `json:"id"`
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}
