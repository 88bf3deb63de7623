package users_repositories

import (
	"time"

	users_models "safetybot-backend/internal/features/users/models"
	"safetybot-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUserInfo(userID uuid.UUID, displayName, photoURL *string) error {
	updates := make(map[string]any)

	if displayName != nil {
		updates["display_name"] = *displayName
	}
	if photoURL != nil {
		updates["photo_url"] = *photoURL
	}

	if len(updates) == 0 {
		return nil
	}

	updates["updated_at"] = time.Now().UTC()

	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

func (r *UserRepository) UpdateProgress(userID uuid.UUID, progress int) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"progress":   progress,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *UserRepository) SetUpdatePersona(userID uuid.UUID, dirty bool) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"update_persona": dirty,
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (r *UserRepository) GetUsersWithDirtyPersona() ([]*users_models.User, error) {
	var users []*users_models.User

	if err := storage.GetDb().
		Where("update_persona = ?", true).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
