package service

import (
	"context"
	"fmt"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// UserService keeps Telegram users registered and up to date.
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// EnsureUser upserts the user and reports whether this is their first contact.
// Returning users get their name and username refreshed from Telegram.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, firstName, username string) (bool, error) {
	user := entities.NewUser(userID, chatID, firstName, username)

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}

	return created, nil
}
