package follows

import (
	"errors"

	"safetybot-backend/internal/features/blogs"
	users_services "safetybot-backend/internal/features/users/services"

	"github.com/google/uuid"
)

var ErrSelfFollow = errors.New("cannot follow yourself")
var ErrUserNotFound = errors.New("user not found")

type FollowService struct {
	followRepository *FollowRepository
	userService      *users_services.UserService
	blogService      *blogs.BlogService
}

func (s *FollowService) ToggleFollow(followerID, followingID uuid.UUID) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}

	target, err := s.userService.GetUserByID(followingID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	return s.followRepository.Toggle(followerID, followingID)
}

func (s *FollowService) IsFollowing(followerID, followingID uuid.UUID) (bool, error) {
	return s.followRepository.IsFollowing(followerID, followingID)
}

func (s *FollowService) GetFollowingIDs(followerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.followRepository.GetFollowingIDs(followerID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// GetFollowingFeed returns posts authored by users the follower follows,
// newest first.
func (s *FollowService) GetFollowingFeed(followerID uuid.UUID) ([]*blogs.BlogPost, error) {
	ids, err := s.followRepository.GetFollowingIDs(followerID)
	if err != nil {
		return nil, err
	}

	return s.blogService.GetPostsByAuthors(ids)
}
