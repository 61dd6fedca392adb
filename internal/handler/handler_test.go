package handler

import (
	"chat-relay-server/internal/domain"
	"chat-relay-server/internal/hub"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMessageService struct {
	messages []*domain.ChatMessage
	err      error
}

func (s *stubMessageService) Save(_ context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	return message, nil
}

func (s *stubMessageService) FindChatMessages(_ context.Context, _, _ string) ([]*domain.ChatMessage, error) {
	return s.messages, s.err
}

type stubUserService struct {
	users []*domain.User
	err   error
}

func (s *stubUserService) SaveUser(user *domain.User) (*domain.User, error)   { return user, nil }
func (s *stubUserService) Disconnect(user *domain.User) (*domain.User, error) { return user, nil }
func (s *stubUserService) FindConnectedUsers() ([]*domain.User, error)        { return s.users, s.err }

func newTestRouter(messages *stubMessageService, users *stubUserService) *mux.Router {
	logger := zap.NewNop()
	h := NewHandler(hub.NewHub(users, messages, logger), messages, users, logger)
	r := mux.NewRouter()
	h.Register(r)
	return r
}

func TestFindChatMessagesEmptyHistory(t *testing.T) {
	router := newTestRouter(&stubMessageService{messages: []*domain.ChatMessage{}}, &stubUserService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/alice/bob", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestFindChatMessagesReturnsHistory(t *testing.T) {
	messages := &stubMessageService{messages: []*domain.ChatMessage{
		{ChatID: "alice_bob", SenderID: "alice", RecipientID: "bob", Content: "hello"},
	}}
	router := newTestRouter(messages, &stubUserService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/alice/bob", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body []*domain.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "hello", body[0].Content)
}

func TestFindChatMessagesStorageFailure(t *testing.T) {
	router := newTestRouter(&stubMessageService{err: assert.AnError}, &stubUserService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/alice/bob", nil))

	// A storage failure must be distinguishable from an empty history.
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestFindConnectedUsers(t *testing.T) {
	users := &stubUserService{users: []*domain.User{
		{Nickname: "alice", FullName: "Alice A.", Status: domain.StatusOnline},
	}}
	router := newTestRouter(&stubMessageService{}, users)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body []*domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "alice", body[0].Nickname)
	assert.Equal(t, domain.StatusOnline, body[0].Status)
}

func TestFindConnectedUsersStorageFailure(t *testing.T) {
	router := newTestRouter(&stubMessageService{}, &stubUserService{err: assert.AnError})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
