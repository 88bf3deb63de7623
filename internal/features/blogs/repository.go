package blogs

import (
	"time"

	"safetybot-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository struct{}

func (r *BlogRepository) CreatePost(post *BlogPost) error {
	return storage.GetDb().Create(post).Error
}

func (r *BlogRepository) GetPostByID(postID uuid.UUID) (*BlogPost, error) {
	var post BlogPost

	err := storage.GetDb().Where("id = ?", postID).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &post, nil
}

func (r *BlogRepository) GetPostBySlug(slug string) (*BlogPost, error) {
	var post BlogPost

	err := storage.GetDb().Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &post, nil
}

func (r *BlogRepository) GetAllPosts() ([]*BlogPost, error) {
	var posts []*BlogPost

	err := storage.GetDb().
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *BlogRepository) GetPostsByAuthor(authorID uuid.UUID) ([]*BlogPost, error) {
	var posts []*BlogPost

	err := storage.GetDb().
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *BlogRepository) GetPostsByAuthors(authorIDs []uuid.UUID) ([]*BlogPost, error) {
	var posts []*BlogPost

	err := storage.GetDb().
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *BlogRepository) GetPostsByCategory(category string) ([]*BlogPost, error) {
	var posts []*BlogPost

	err := storage.GetDb().
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *BlogRepository) SearchPosts(term string) ([]*BlogPost, error) {
	var posts []*BlogPost

	pattern := "%" + term + "%"
	err := storage.GetDb().
		Where(
			"title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ? OR tags::text ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *BlogRepository) DeletePost(postID, authorID uuid.UUID) (bool, error) {
	var deleted bool

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND author_id = ?", postID, authorID).
			Delete(&BlogPost{})
		if result.Error != nil {
			return result.Error
		}

		deleted = result.RowsAffected > 0
		if !deleted {
			return nil
		}

		if err := tx.Where("post_id = ?", postID).Delete(&PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&PostBookmark{}).Error; err != nil {
			return err
		}

		var commentIDs []uuid.UUID
		if err := tx.Model(&Comment{}).
			Where("post_id = ?", postID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&CommentLike{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("post_id = ?", postID).Delete(&Comment{}).Error
	})

	return deleted, err
}

// TogglePostLike inserts or removes the like row and adjusts the
// denormalized counter inside one transaction, so concurrent toggles
// from the same user cannot double-count.
func (r *BlogRepository) TogglePostLike(postID, userID uuid.UUID) (bool, int, error) {
	return r.togglePostAction(
		postID, userID, "likes",
		func(tx *gorm.DB) *gorm.DB {
			return tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&PostLike{})
		},
		func(tx *gorm.DB) error {
			return tx.Create(&PostLike{PostID: postID, UserID: userID, CreatedAt: time.Now()}).Error
		},
	)
}

func (r *BlogRepository) TogglePostBookmark(postID, userID uuid.UUID) (bool, int, error) {
	return r.togglePostAction(
		postID, userID, "bookmarks",
		func(tx *gorm.DB) *gorm.DB {
			return tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&PostBookmark{})
		},
		func(tx *gorm.DB) error {
			return tx.Create(&PostBookmark{PostID: postID, UserID: userID, CreatedAt: time.Now()}).Error
		},
	)
}

func (r *BlogRepository) togglePostAction(
	postID, userID uuid.UUID,
	counterColumn string,
	deleteRow func(tx *gorm.DB) *gorm.DB,
	insertRow func(tx *gorm.DB) error,
) (bool, int, error) {
	var active bool
	var count int

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := deleteRow(tx)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			active = false
			if err := tx.Model(&BlogPost{}).
				Where("id = ?", postID).
				UpdateColumn(counterColumn, gorm.Expr("GREATEST("+counterColumn+" - 1, 0)")).
				Error; err != nil {
				return err
			}
		} else {
			if err := insertRow(tx); err != nil {
				return err
			}

			active = true
			if err := tx.Model(&BlogPost{}).
				Where("id = ?", postID).
				UpdateColumn(counterColumn, gorm.Expr(counterColumn+" + 1")).
				Error; err != nil {
				return err
			}
		}

		return tx.Model(&BlogPost{}).
			Where("id = ?", postID).
			Pluck(counterColumn, &count).Error
	})

	return active, count, err
}

func (r *BlogRepository) HasUserLikedPost(postID, userID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BlogRepository) HasUserBookmarkedPost(postID, userID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&PostBookmark{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddComment creates the comment row and increments the post's comment
// counter in the same transaction.
func (r *BlogRepository) AddComment(comment *Comment) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		return tx.Model(&BlogPost{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comments", gorm.Expr("comments + 1")).Error
	})
}

func (r *BlogRepository) GetComments(postID uuid.UUID) ([]*Comment, error) {
	var comments []*Comment

	err := storage.GetDb().
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *BlogRepository) DeleteComment(postID, commentID, authorID uuid.UUID) (bool, error) {
	var deleted bool

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND post_id = ? AND author_id = ?", commentID, postID, authorID).
			Delete(&Comment{})
		if result.Error != nil {
			return result.Error
		}

		deleted = result.RowsAffected > 0
		if !deleted {
			return nil
		}

		if err := tx.Where("comment_id = ?", commentID).Delete(&CommentLike{}).Error; err != nil {
			return err
		}

		return tx.Model(&BlogPost{}).
			Where("id = ?", postID).
			UpdateColumn("comments", gorm.Expr("GREATEST(comments - 1, 0)")).Error
	})

	return deleted, err
}

func (r *BlogRepository) ToggleCommentLike(commentID, userID uuid.UUID) (bool, int, error) {
	var active bool
	var count int

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&CommentLike{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			active = false
			if err := tx.Model(&Comment{}).
				Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).
				Error; err != nil {
				return err
			}
		} else {
			like := &CommentLike{CommentID: commentID, UserID: userID, CreatedAt: time.Now()}
			if err := tx.Create(like).Error; err != nil {
				return err
			}

			active = true
			if err := tx.Model(&Comment{}).
				Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).
				Error; err != nil {
				return err
			}
		}

		return tx.Model(&Comment{}).
			Where("id = ?", commentID).
			Pluck("likes", &count).Error
	})

	return active, count, err
}

func (r *BlogRepository) GetCommentByID(commentID uuid.UUID) (*Comment, error) {
	var comment Comment

	err := storage.GetDb().Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &comment, nil
}
