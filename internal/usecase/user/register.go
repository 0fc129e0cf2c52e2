package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Contact  string

	Zipcode    string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Country    string
}

type AuthOutput struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Register struct {
	users  domain.Repository
	tokens domain.TokenIssuer

	cost        int
	emailDomain func(string) bool
}

func NewRegister(users domain.Repository, tokens domain.TokenIssuer) *Register {
	return &Register{
		users:       users,
		tokens:      tokens,
		cost:        bcrypt.DefaultCost,
		emailDomain: validators.IsEmailDomainValid,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	if strings.TrimSpace(in.Country) == "" {
		in.Country = validators.SupportedCountry
	}

	// --------------------------------------------------
	// 1️⃣ Campos
	// --------------------------------------------------
	if in.Name == "" {
		return nil, httperr.MissingParam("name")
	}
	if in.Email == "" {
		return nil, httperr.MissingParam("email")
	}
	if !validators.IsEmail(in.Email) {
		return nil, httperr.InvalidParam("email")
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}
	if err := checkAddress(&in.Contact, &in.Zipcode, &in.Country, &in.State); err != nil {
		return nil, err
	}
	if !uc.emailDomain(in.Email) {
		return nil, httperr.InvalidParam("email")
	}

	// --------------------------------------------------
	// 2️⃣ E-mail único
	// --------------------------------------------------
	existing, err := uc.users.FindUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.AlreadyExists(SubjectEmailTaken)
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Contact:      strings.TrimSpace(in.Contact),
		Zipcode:      strings.TrimSpace(in.Zipcode),
		Street:       strings.TrimSpace(in.Street),
		Number:       strings.TrimSpace(in.Number),
		Complement:   strings.TrimSpace(in.Complement),
		District:     strings.TrimSpace(in.District),
		City:         strings.TrimSpace(in.City),
		State:        in.State,
		Country:      in.Country,
	}

	if err := uc.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, httperr.AlreadyExists(SubjectEmailTaken)
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: u, Token: token}, nil
}
