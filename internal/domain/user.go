package domain

// Status is a user's presence state. It is the only field of a User that
// changes after creation.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

// User represents a chat participant. The nickname is the identity key,
// stable across sessions.
type User struct {
	Nickname string `json:"nickName"`
	FullName string `json:"fullName"`
	Status   Status `json:"status"`
}
