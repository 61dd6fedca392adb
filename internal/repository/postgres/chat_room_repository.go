package postgres

import (
	"chat-relay-server/internal/domain"
	"database/sql"
	"fmt"
)

// ChatRoomRepository handles database operations for chat room records.
type ChatRoomRepository struct {
	DB *sql.DB
}

// NewChatRoomRepository creates a new ChatRoomRepository.
func NewChatRoomRepository(db *sql.DB) *ChatRoomRepository {
	return &ChatRoomRepository{DB: db}
}

// FindBySenderAndRecipient retrieves the directional record matching exactly
// (senderID, recipientID).
func (r *ChatRoomRepository) FindBySenderAndRecipient(senderID, recipientID string) (*domain.ChatRoom, error) {
	room := &domain.ChatRoom{}
	query := `SELECT id, chat_id, sender_id, recipient_id FROM chat_rooms WHERE sender_id = $1 AND recipient_id = $2`
	err := r.DB.QueryRow(query, senderID, recipientID).Scan(&room.ID, &room.ChatID, &room.SenderID, &room.RecipientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, err
	}
	return room, nil
}

// CreateChatRoomPair persists both directional records of a conversation in
// one transaction and returns the chat id that ended up stored. The unique
// (sender_id, recipient_id) constraint makes first-contact creation race-free:
// a losing racer's inserts are skipped and the winner's chat id is read back,
// so exactly one id is ever observable for an unordered pair.
func (r *ChatRoomRepository) CreateChatRoomPair(senderRoom, recipientRoom *domain.ChatRoom) (string, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin chat room tx: %w", err)
	}
	defer tx.Rollback()

	// Insert in a canonical key order so two racing transactions coming from
	// opposite directions cannot deadlock on each other's row locks.
	rooms := []*domain.ChatRoom{senderRoom, recipientRoom}
	if rooms[1].SenderID < rooms[0].SenderID {
		rooms[0], rooms[1] = rooms[1], rooms[0]
	}

	insert := `
		INSERT INTO chat_rooms (id, chat_id, sender_id, recipient_id) VALUES ($1, $2, $3, $4)
		ON CONFLICT (sender_id, recipient_id) DO NOTHING
	`
	for _, room := range rooms {
		if _, err := tx.Exec(insert, room.ID, room.ChatID, room.SenderID, room.RecipientID); err != nil {
			return "", err
		}
	}

	var chatID string
	query := `SELECT chat_id FROM chat_rooms WHERE sender_id = $1 AND recipient_id = $2`
	if err := tx.QueryRow(query, senderRoom.SenderID, senderRoom.RecipientID).Scan(&chatID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return chatID, nil
}
