package store

import (
	"context"
	"strings"
	"sync"

	"cineclub/internal/account/models"
	id "cineclub/pkg/domain"
	"cineclub/pkg/platform/sentinel"
)

// InMemory keeps users in maps with lowercase username and email indexes.
type InMemory struct {
	mu         sync.RWMutex
	users      map[id.UserID]*models.User
	byUsername map[string]id.UserID
	byEmail    map[string]id.UserID
}

func NewInMemory() *InMemory {
	return &InMemory{
		users:      make(map[id.UserID]*models.User),
		byUsername: make(map[string]id.UserID),
		byEmail:    make(map[string]id.UserID),
	}
}

func (s *InMemory) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uname, email := strings.ToLower(u.Username), strings.ToLower(u.Email)
	if _, ok := s.byUsername[uname]; ok {
		return ErrUsernameTaken
	}
	if _, ok := s.byEmail[email]; ok {
		return ErrEmailTaken
	}
	if _, ok := s.users[u.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *u
	s.users[u.ID] = &cp
	s.byUsername[uname] = u.ID
	s.byEmail[email] = u.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.users[userID]
	return &cp, nil
}

// UsernamesByID resolves the ids it knows and skips the rest.
func (s *InMemory) UsernamesByID(_ context.Context, userIDs []id.UserID) (map[id.UserID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.UserID]string, len(userIDs))
	for _, uid := range userIDs {
		if u, ok := s.users[uid]; ok {
			out[uid] = u.Username
		}
	}
	return out, nil
}
