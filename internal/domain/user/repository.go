package user

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/property-booking/internal/models"
)

var (
	// ErrDuplicateEmail is returned on writes that break the email index.
	ErrDuplicateEmail = errors.New("user_email_duplicated")
	// ErrResetTokenNotFound is returned for unknown or expired reset tokens.
	ErrResetTokenNotFound = errors.New("reset_token_not_found")
)

// Finders return (nil, nil) when nothing matches.
type Repository interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, id string, fields map[string]any) (*models.User, error)
	UpdatePassword(ctx context.Context, id string, hash string) error
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the user id and removes the token.
	Consume(ctx context.Context, token string) (string, error)
}
