package service

import (
	"bytes"
	"chat-relay-server/internal/domain"
	"context"
	"sort"
	"sync"
)

// In-memory repository fakes implementing the repository interfaces.

type memoryChatRoomRepository struct {
	mu    sync.Mutex
	rooms map[string]*domain.ChatRoom // directional key sender|recipient
	err   error
}

func newMemoryChatRoomRepository() *memoryChatRoomRepository {
	return &memoryChatRoomRepository{rooms: make(map[string]*domain.ChatRoom)}
}

func roomKey(senderID, recipientID string) string {
	return senderID + "|" + recipientID
}

func (r *memoryChatRoomRepository) FindBySenderAndRecipient(senderID, recipientID string) (*domain.ChatRoom, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rooms[roomKey(senderID, recipientID)], nil
}

// CreateChatRoomPair mimics the unique (sender_id, recipient_id) constraint:
// existing directional rows survive and the stored chat id wins.
func (r *memoryChatRoomRepository) CreateChatRoomPair(senderRoom, recipientRoom *domain.ChatRoom) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, room := range []*domain.ChatRoom{senderRoom, recipientRoom} {
		key := roomKey(room.SenderID, room.RecipientID)
		if _, exists := r.rooms[key]; !exists {
			r.rooms[key] = room
		}
	}
	return r.rooms[roomKey(senderRoom.SenderID, senderRoom.RecipientID)].ChatID, nil
}

type memoryChatMessageRepository struct {
	mu       sync.Mutex
	messages []*domain.ChatMessage
	err      error
}

func newMemoryChatMessageRepository() *memoryChatMessageRepository {
	return &memoryChatMessageRepository{}
}

func (r *memoryChatMessageRepository) SaveMessage(_ context.Context, message *domain.ChatMessage) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *memoryChatMessageRepository) FindByChatID(_ context.Context, chatID string) ([]*domain.ChatMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.ChatMessage{}
	for _, m := range r.messages {
		if m.ChatID == chatID {
			result = append(result, m)
		}
	}
	// Same (timestamp, _id) ordering as the real message store.
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return bytes.Compare(result[i].ID[:], result[j].ID[:]) < 0
	})
	return result, nil
}

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
	err   error
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepository) SaveUser(user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	r.users[user.Nickname] = &stored
	return nil
}

func (r *memoryUserRepository) GetUserByNickname(nickname string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[nickname]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindAllByStatus(status domain.Status) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.User{}
	for _, user := range r.users {
		if user.Status == status {
			copied := *user
			result = append(result, &copied)
		}
	}
	return result, nil
}
