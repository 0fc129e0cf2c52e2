package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
)

func expectCode(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
}

func newRegister(users *memUsers) *Register {
	uc := NewRegister(users, stubIssuer{})
	uc.cost = bcrypt.MinCost
	uc.emailDomain = func(email string) bool { return !strings.HasSuffix(email, "@nowhere.invalid") }
	return uc
}

func validRegister() RegisterInput {
	return RegisterInput{
		Name:     "Ana Souza",
		Email:    " Ana@Example.com ",
		Password: "s3cret!",
		Contact:  "(21) 99876-5432",
		Zipcode:  "20040-020",
		City:     "Rio de Janeiro",
		State:    "rj",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	users := newMemUsers()

	out, err := newRegister(users).Execute(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "ana@example.com" || out.User.State != "RJ" || out.User.Country != "BR" {
		t.Fatalf("unexpected user %+v", out.User)
	}
	if out.User.PasswordHash == "s3cret!" {
		t.Fatal("password must be hashed")
	}
	if out.Token != "token-"+out.User.ID {
		t.Fatalf("unexpected token %q", out.Token)
	}

	login := NewLogin(users, stubIssuer{})
	if _, err := login.Execute(context.Background(), LoginInput{Email: "ANA@example.com", Password: "s3cret!"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, err = login.Execute(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"})
	expectCode(t, err, httperr.CodeWrongCredentials)

	_, err = login.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "s3cret!"})
	expectCode(t, err, httperr.CodeWrongCredentials)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		code    string
		message string
	}{
		{"no name", func(in *RegisterInput) { in.Name = " " }, httperr.CodeMissingParam, "Missing param: name"},
		{"no email", func(in *RegisterInput) { in.Email = "" }, httperr.CodeMissingParam, "Missing param: email"},
		{"bad email", func(in *RegisterInput) { in.Email = "ana.example.com" }, httperr.CodeInvalidParam, "Invalid param: email"},
		{"dead domain", func(in *RegisterInput) { in.Email = "ana@nowhere.invalid" }, httperr.CodeInvalidParam, "Invalid param: email"},
		{"short password", func(in *RegisterInput) { in.Password = "123" }, httperr.CodeInvalidParam, "Invalid param: password"},
		{"bad contact", func(in *RegisterInput) { in.Contact = "12" }, httperr.CodeInvalidParam, "Invalid param: contact"},
		{"bad zipcode", func(in *RegisterInput) { in.Zipcode = "2004" }, httperr.CodeInvalidParam, "Invalid param: zipcode"},
		{"bad country", func(in *RegisterInput) { in.Country = "AR" }, httperr.CodeInvalidParam, "Invalid param: country"},
		{"bad state", func(in *RegisterInput) { in.State = "ZZ" }, httperr.CodeInvalidParam, "Invalid param: state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMemUsers()
			in := validRegister()
			tt.mutate(&in)

			_, err := newRegister(users).Execute(context.Background(), in)
			expectCode(t, err, tt.code)
			if err.Error() != tt.message {
				t.Fatalf("unexpected message %q", err.Error())
			}
			if len(users.byID) != 0 {
				t.Fatal("nothing may be stored")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newMemUsers()
	uc := newRegister(users)

	if _, err := uc.Execute(context.Background(), validRegister()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := uc.Execute(context.Background(), validRegister())
	expectCode(t, err, httperr.CodeAlreadyExists)
	if err.Error() != "An user with this email already exists" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestProfile(t *testing.T) {
	users := newMemUsers()
	out, err := newRegister(users).Execute(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := validRegister()
	other.Email = "bia@example.com"
	if _, err := newRegister(users).Execute(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	get := NewGetProfile(users)
	if _, err := get.Execute(context.Background(), "ghost"); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	update := NewUpdateProfile(users)
	city, state := "Niterói", "rj"
	u, err := update.Execute(context.Background(), UpdateProfileInput{UserID: out.User.ID, City: &city, State: &state})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.City != "Niterói" || u.State != "RJ" {
		t.Fatalf("update not applied: %+v", u)
	}

	taken := "BIA@example.com"
	_, err = update.Execute(context.Background(), UpdateProfileInput{UserID: out.User.ID, Email: &taken})
	expectCode(t, err, httperr.CodeAlreadyExists)

	badZip := "x"
	_, err = update.Execute(context.Background(), UpdateProfileInput{UserID: out.User.ID, Zipcode: &badZip})
	expectCode(t, err, httperr.CodeInvalidParam)
}

func TestPasswordResetFlow(t *testing.T) {
	users := newMemUsers()
	out, err := newRegister(users).Execute(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens, queue := newMemTokens(), &memQueue{}
	request := NewRequestPasswordReset(users, tokens, queue, PasswordResetConfig{
		TTL:    30 * time.Minute,
		From:   "no-reply@example.com",
		AppURL: "https://app.example.com",
	})

	if err := request.Execute(context.Background(), "ANA@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.sent) != 1 || queue.sent[0].To != "ana@example.com" {
		t.Fatalf("expected one reset mail, got %+v", queue.sent)
	}
	if tokens.ttl != 30*time.Minute || len(tokens.tokens) != 1 {
		t.Fatalf("token not stored with ttl")
	}

	var token string
	for k := range tokens.tokens {
		token = k
	}
	if !strings.Contains(queue.sent[0].Body, "token="+token) {
		t.Fatalf("mail does not carry the token")
	}

	reset := NewResetPassword(users, tokens, nil)
	reset.cost = bcrypt.MinCost

	if err := reset.Execute(context.Background(), token, "new-pass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users.byID[out.User.ID].PasswordHash), []byte("new-pass")); err != nil {
		t.Fatal("password was not replaced")
	}

	// single use
	err = reset.Execute(context.Background(), token, "another-pass")
	expectCode(t, err, httperr.CodeInvalidParam)
}

func TestPasswordResetRequestEdgeCases(t *testing.T) {
	users := newMemUsers()
	if _, err := newRegister(users).Execute(context.Background(), validRegister()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	queue := &memQueue{fail: true}
	request := NewRequestPasswordReset(users, newMemTokens(), queue, PasswordResetConfig{TTL: time.Minute})

	if err := request.Execute(context.Background(), "ana@example.com"); err != nil {
		t.Fatalf("queue failures must not surface: %v", err)
	}

	err := request.Execute(context.Background(), "ghost@example.com")
	expectCode(t, err, httperr.CodeNotFound)

	err = NewResetPassword(users, newMemTokens(), nil).Execute(context.Background(), "tok", "123")
	expectCode(t, err, httperr.CodeInvalidParam)
}
