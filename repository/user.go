package repository

import (
	"context"
	"os"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.Avatar == nil || *user.Avatar == "" {
		if defImage := os.Getenv("DEFAULT_AVATAR_URL"); defImage != "" {
			user.Avatar = &defImage
		}
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SetAvatar(ctx context.Context, uuid, avatarURL string) (*domain.User, error) {
	if err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{"avatar": avatarURL, "updated_at": time.Now()}).Error; err != nil {
		return nil, err
	}
	return r.GetUserByUUID(ctx, uuid)
}
