package blogs

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID           uuid.UUID `json:"id"           gorm:"type:uuid;primaryKey"`
	AuthorID     uuid.UUID `json:"authorId"     gorm:"type:uuid;not null;index"`
	AuthorName   string    `json:"authorName"   gorm:"not null"`
	AuthorAvatar string    `json:"authorAvatar"`
	Title        string    `json:"title"        gorm:"not null"`
	Slug         string    `json:"slug"         gorm:"not null;uniqueIndex"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"      gorm:"not null"`
	CoverImage   string    `json:"coverImage"`
	Category     string    `json:"category"     gorm:"index"`
	Tags         []string  `json:"tags"         gorm:"serializer:json"`
	ReadTime     int       `json:"readTime"     gorm:"not null;default:5"`
	Date         time.Time `json:"date"         gorm:"not null"`

	Likes     int `json:"likes"     gorm:"not null;default:0"`
	Comments  int `json:"comments"  gorm:"not null;default:0"`
	Bookmarks int `json:"bookmarks" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

type Comment struct {
	ID           uuid.UUID `json:"id"           gorm:"type:uuid;primaryKey"`
	PostID       uuid.UUID `json:"postId"       gorm:"type:uuid;not null;index"`
	AuthorID     uuid.UUID `json:"authorId"     gorm:"type:uuid;not null"`
	AuthorName   string    `json:"authorName"   gorm:"not null"`
	AuthorAvatar string    `json:"authorAvatar"`
	Content      string    `json:"content"      gorm:"not null"`
	Likes        int       `json:"likes"        gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"not null"`
	UpdatedAt    time.Time `json:"updatedAt"    gorm:"not null"`
}

func (Comment) TableName() string {
	return "blog_comments"
}

type PostLike struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (PostLike) TableName() string {
	return "blog_post_likes"
}

type PostBookmark struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (PostBookmark) TableName() string {
	return "blog_post_bookmarks"
}

type CommentLike struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CommentLike) TableName() string {
	return "blog_comment_likes"
}
