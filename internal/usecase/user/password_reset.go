package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	domain "github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/mail"
)

// MailQueue accepts outgoing mail for asynchronous delivery.
type MailQueue interface {
	Enqueue(ctx context.Context, m mail.Message) error
}

type PasswordResetConfig struct {
	TTL    time.Duration
	From   string
	AppURL string
}

type RequestPasswordReset struct {
	users  domain.Repository
	tokens domain.ResetTokenStore
	queue  MailQueue
	cfg    PasswordResetConfig
}

func NewRequestPasswordReset(
	users domain.Repository,
	tokens domain.ResetTokenStore,
	queue MailQueue,
	cfg PasswordResetConfig,
) *RequestPasswordReset {
	return &RequestPasswordReset{
		users:  users,
		tokens: tokens,
		queue:  queue,
		cfg:    cfg,
	}
}

// Execute stores a single use token and queues the reset mail. A queue
// failure is logged and not reported; the token is still valid.
func (uc *RequestPasswordReset) Execute(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return httperr.MissingParam("email")
	}

	u, err := uc.users.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return httperr.NotFoundErr(SubjectUser)
	}

	token := uuid.NewString()
	if err := uc.tokens.Save(ctx, token, u.ID, uc.cfg.TTL); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}

	msg := mail.Message{
		From:    uc.cfg.From,
		To:      u.Email,
		Subject: "Password reset",
		Body: fmt.Sprintf(
			"Hi %s,\n\nUse the link below to choose a new password. It expires in %s.\n\n%s/reset-password?token=%s\n",
			u.Name, uc.cfg.TTL, uc.cfg.AppURL, token,
		),
	}
	if err := uc.queue.Enqueue(ctx, msg); err != nil {
		slog.Warn("enqueue reset mail failed",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
	}
	return nil
}

type ResetPassword struct {
	users  domain.Repository
	tokens domain.ResetTokenStore
	audit  *audit.Dispatcher
	cost   int
}

func NewResetPassword(
	users domain.Repository,
	tokens domain.ResetTokenStore,
	audit *audit.Dispatcher,
) *ResetPassword {
	return &ResetPassword{
		users:  users,
		tokens: tokens,
		audit:  audit,
		cost:   bcrypt.DefaultCost,
	}
}

func (uc *ResetPassword) Execute(ctx context.Context, token, password string) error {
	if token == "" {
		return httperr.MissingParam("token")
	}
	if err := checkPassword(password); err != nil {
		return err
	}

	userID, err := uc.tokens.Consume(ctx, token)
	if errors.Is(err, domain.ErrResetTokenNotFound) {
		return httperr.InvalidParam("token")
	}
	if err != nil {
		return err
	}

	u, err := uc.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return httperr.NotFoundErr(SubjectUser)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, u.ID, string(hashed)); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionPasswordReset,
		Entity:   "user",
		EntityID: u.ID,
	})
	return nil
}
