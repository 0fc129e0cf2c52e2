package user

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/mail"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type memUsers struct {
	byID map[string]*models.User
	seq  int
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*models.User{}}
}

func (r *memUsers) FindUserByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) CreateUser(_ context.Context, u *models.User) error {
	for _, other := range r.byID {
		if other.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUsers) UpdateUser(_ context.Context, id string, fields map[string]any) (*models.User, error) {
	u := r.byID[id]
	for col, v := range fields {
		s := v.(string)
		switch col {
		case "name":
			u.Name = s
		case "email":
			u.Email = s
		case "contact":
			u.Contact = s
		case "state":
			u.State = s
		case "city":
			u.City = s
		}
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) UpdatePassword(_ context.Context, id string, hash string) error {
	r.byID[id].PasswordHash = hash
	return nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(userID string) (string, error) { return "token-" + userID, nil }

type memTokens struct {
	mu     sync.Mutex
	tokens map[string]string
	ttl    time.Duration
}

func newMemTokens() *memTokens {
	return &memTokens{tokens: map[string]string{}}
}

func (s *memTokens) Save(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	s.ttl = ttl
	return nil
}

func (s *memTokens) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrResetTokenNotFound
	}
	delete(s.tokens, token)
	return id, nil
}

type memQueue struct {
	sent []mail.Message
	fail bool
}

func (q *memQueue) Enqueue(_ context.Context, m mail.Message) error {
	if q.fail {
		return errors.New("redis down")
	}
	q.sent = append(q.sent, m)
	return nil
}
