package mongo

import (
	"chat-relay-server/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const messageCollection = "chat_messages"

// ChatMessageRepository handles database operations for chat messages.
type ChatMessageRepository struct {
	DB *mongo.Database
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(db *mongo.Database) *ChatMessageRepository {
	return &ChatMessageRepository{DB: db}
}

// SaveMessage inserts a new chat message. The write is acknowledged by the
// server before this returns.
func (r *ChatMessageRepository) SaveMessage(ctx context.Context, message *domain.ChatMessage) error {
	collection := r.DB.Collection(messageCollection)
	_, err := collection.InsertOne(ctx, message)
	return err
}

// FindByChatID retrieves all messages of a conversation in insertion order.
// Returns an empty slice, never nil, when the conversation has no messages.
func (r *ChatMessageRepository) FindByChatID(ctx context.Context, chatID string) ([]*domain.ChatMessage, error) {
	collection := r.DB.Collection(messageCollection)

	// BSON datetimes have millisecond precision, so the timestamp alone does
	// not order rapid sequential sends; the object id breaks ties because it
	// is monotonic per process.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"chat_id": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []*domain.ChatMessage{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*domain.ChatMessage{}
	}

	return messages, nil
}
