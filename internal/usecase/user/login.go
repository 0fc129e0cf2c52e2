package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	users  domain.Repository
	tokens domain.TokenIssuer
}

func NewLogin(users domain.Repository, tokens domain.TokenIssuer) *Login {
	return &Login{users: users, tokens: tokens}
}

// Execute reports WrongCredentials for both an unknown email and a wrong
// password.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*AuthOutput, error) {
	u, err := uc.users.FindUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.WrongCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, httperr.WrongCredentials()
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{User: u, Token: token}, nil
}
