package service

import (
	"chat-relay-server/internal/domain"
)

// UserService is the presence registry.
type UserService struct {
	userRepo IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SaveUser upserts the user with status ONLINE and returns the stored state.
func (s *UserService) SaveUser(user *domain.User) (*domain.User, error) {
	user.Status = domain.StatusOnline
	if err := s.userRepo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Disconnect marks a known user OFFLINE. Disconnecting a user that was never
// registered is tolerated silently.
func (s *UserService) Disconnect(user *domain.User) (*domain.User, error) {
	stored, err := s.userRepo.GetUserByNickname(user.Nickname)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		user.Status = domain.StatusOffline
		return user, nil
	}

	stored.Status = domain.StatusOffline
	if err := s.userRepo.SaveUser(stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// FindConnectedUsers returns all users currently ONLINE.
func (s *UserService) FindConnectedUsers() ([]*domain.User, error) {
	return s.userRepo.FindAllByStatus(domain.StatusOnline)
}
