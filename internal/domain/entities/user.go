package entities

import "time"

// User represents bot user.
type User struct {
	ID        int64 // Telegram user ID
	ChatID    int64
	FirstName string
	Username  string
	IsActive  bool
	CreatedAt time.Time
}

func NewUser(id, chatID int64, firstName, username string) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		FirstName: firstName,
		Username:  username,
		IsActive:  true,
	}
}
