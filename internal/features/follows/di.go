package follows

import (
	"safetybot-backend/internal/features/blogs"
	users_services "safetybot-backend/internal/features/users/services"
)

var followRepository = &FollowRepository{}
var followService = &FollowService{
	followRepository,
	users_services.GetUserService(),
	blogs.GetBlogService(),
}
var followController = &FollowController{followService}

func GetFollowService() *FollowService {
	return followService
}

func GetFollowController() *FollowController {
	return followController
}
