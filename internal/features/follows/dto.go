package follows

import (
	"safetybot-backend/internal/features/blogs"

	"github.com/google/uuid"
)

type ToggleFollowResponseDTO struct {
	Following bool `json:"following"`
}

type IsFollowingResponseDTO struct {
	Following bool `json:"following"`
}

type FollowingListResponseDTO struct {
	UserIDs []uuid.UUID `json:"userIds"`
}

type FeedResponseDTO struct {
	Posts []*blogs.BlogPost `json:"posts"`
}
