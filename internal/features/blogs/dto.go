package blogs

import "github.com/google/uuid"

type CreatePostRequestDTO struct {
	Title      string   `json:"title"      binding:"required"`
	Slug       string   `json:"slug"       binding:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"    binding:"required"`
	CoverImage string   `json:"coverImage"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	ReadTime   int      `json:"readTime"`
	Date       string   `json:"date"`
}

type AddCommentRequestDTO struct {
	Content string `json:"content" binding:"required"`
}

type ToggleResponseDTO struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

type ListPostsResponseDTO struct {
	Posts []*BlogPost `json:"posts"`
}

type ListCommentsResponseDTO struct {
	Comments []*Comment `json:"comments"`
}

type ListTagsResponseDTO struct {
	Tags []string `json:"tags"`
}

type PostStatusResponseDTO struct {
	PostID     uuid.UUID `json:"postId"`
	Liked      bool      `json:"liked"`
	Bookmarked bool      `json:"bookmarked"`
}
