package follows

import (
	"time"

	"safetybot-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowRepository struct{}

// Toggle removes the edge if present, otherwise creates it, in a single
// transaction. Returns whether the edge exists afterwards.
func (r *FollowRepository) Toggle(followerID, followingID uuid.UUID) (bool, error) {
	var following bool

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&Follow{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			following = false
			return nil
		}

		following = true
		return tx.Create(&Follow{
			FollowerID:  followerID,
			FollowingID: followingID,
			CreatedAt:   time.Now(),
		}).Error
	})

	return following, err
}

func (r *FollowRepository) IsFollowing(followerID, followingID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *FollowRepository) GetFollowingIDs(followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := storage.GetDb().
		Model(&Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *FollowRepository) GetFollowerIDs(followingID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := storage.GetDb().
		Model(&Follow{}).
		Where("following_id = ?", followingID).
		Order("created_at DESC").
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
