package user

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

type GetProfile struct {
	users domain.Repository
}

func NewGetProfile(users domain.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, userID string) (*models.User, error) {
	u, err := uc.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.NotFoundErr(SubjectUser)
	}
	return u, nil
}

// UpdateProfileInput is sparse: nil fields keep their stored value.
type UpdateProfileInput struct {
	UserID string

	Name    *string
	Email   *string
	Contact *string

	Zipcode    *string
	Street     *string
	Number     *string
	Complement *string
	District   *string
	City       *string
	State      *string
	Country    *string
}

type UpdateProfile struct {
	users domain.Repository
}

func NewUpdateProfile(users domain.Repository) *UpdateProfile {
	return &UpdateProfile{users: users}
}

func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.InvalidParam("name")
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		in.Email = &email
		if !validators.IsEmail(email) {
			return nil, httperr.InvalidParam("email")
		}
	}
	if err := checkAddress(in.Contact, in.Zipcode, in.Country, in.State); err != nil {
		return nil, err
	}

	u, err := uc.users.FindUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httperr.NotFoundErr(SubjectUser)
	}

	if in.Email != nil && *in.Email != u.Email {
		other, err := uc.users.FindUserByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, httperr.AlreadyExists(SubjectEmailTaken)
		}
	}

	fields := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = strings.TrimSpace(*v)
		}
	}
	set("name", in.Name)
	set("email", in.Email)
	set("contact", in.Contact)
	set("zipcode", in.Zipcode)
	set("street", in.Street)
	set("number", in.Number)
	set("complement", in.Complement)
	set("district", in.District)
	set("city", in.City)
	set("country", in.Country)
	if in.State != nil {
		fields["state"] = strings.ToUpper(strings.TrimSpace(*in.State))
	}

	if len(fields) == 0 {
		return u, nil
	}

	updated, err := uc.users.UpdateUser(ctx, u.ID, fields)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, httperr.AlreadyExists(SubjectEmailTaken)
		}
		return nil, err
	}
	return updated, nil
}
