package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

var _ user.Repository = (*UserGormRepository)(nil)

func (r *UserGormRepository) FindUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	return orNil(&u, err)
}

func (r *UserGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	return orNil(&u, err)
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if isDuplicateKey(err) {
		return user.ErrDuplicateEmail
	}
	return err
}

func (r *UserGormRepository) UpdateUser(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*models.User, error) {

	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields).Error
	if isDuplicateKey(err) {
		return nil, user.ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return r.FindUserByID(ctx, id)
}

func (r *UserGormRepository) UpdatePassword(
	ctx context.Context,
	id string,
	hash string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}
