package service

import (
	"chat-relay-server/internal/domain"
	"fmt"
)

// ChatRoomService assigns an unordered pair of users to a stable chat id.
type ChatRoomService struct {
	chatRoomRepo IChatRoomRepository
}

// NewChatRoomService creates a new ChatRoomService.
func NewChatRoomService(chatRoomRepo IChatRoomRepository) *ChatRoomService {
	return &ChatRoomService{chatRoomRepo: chatRoomRepo}
}

// GetChatRoomID resolves (senderID, recipientID) to the pair's chat id.
// Resolution from either direction yields the same id because both directional
// records share it. On a miss with createIfAbsent set, both records are
// created atomically; the repository guarantees at most one creation winner
// per unordered pair, so a racing caller gets the winner's id back.
func (s *ChatRoomService) GetChatRoomID(senderID, recipientID string, createIfAbsent bool) (string, bool, error) {
	room, err := s.chatRoomRepo.FindBySenderAndRecipient(senderID, recipientID)
	if err != nil {
		return "", false, err
	}
	if room != nil {
		return room.ChatID, true, nil
	}
	if !createIfAbsent {
		return "", false, nil
	}

	chatID := newChatID(senderID, recipientID)
	stored, err := s.chatRoomRepo.CreateChatRoomPair(
		domain.NewChatRoom(chatID, senderID, recipientID),
		domain.NewChatRoom(chatID, recipientID, senderID),
	)
	if err != nil {
		return "", false, err
	}
	return stored, true, nil
}

// newChatID joins the participant ids in the order they were first observed.
func newChatID(senderID, recipientID string) string {
	return fmt.Sprintf("%s_%s", senderID, recipientID)
}
