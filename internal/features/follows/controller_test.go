package follows

import (
	"fmt"
	"net/http"
	"testing"

	"safetybot-backend/internal/features/blogs"
	users_testing "safetybot-backend/internal/features/users/testing"
	test_utils "safetybot-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToggleFollow_AddsAndRemovesEdge(t *testing.T) {
	router := users_testing.CreateTestRouter(GetFollowController())
	follower := users_testing.CreateTestUser()
	author := users_testing.CreateTestUser()

	toggleURL := fmt.Sprintf("/api/v1/follows/%s/toggle", author.UserID)
	statusURL := fmt.Sprintf("/api/v1/follows/%s/status", author.UserID)

	var toggled ToggleFollowResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, toggleURL, "Bearer "+follower.Token, nil, http.StatusOK, &toggled,
	)
	assert.True(t, toggled.Following)

	var status IsFollowingResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, statusURL, "Bearer "+follower.Token, http.StatusOK, &status,
	)
	assert.True(t, status.Following)

	test_utils.MakePostRequestAndUnmarshal(
		t, router, toggleURL, "Bearer "+follower.Token, nil, http.StatusOK, &toggled,
	)
	assert.False(t, toggled.Following)

	test_utils.MakeGetRequestAndUnmarshal(
		t, router, statusURL, "Bearer "+follower.Token, http.StatusOK, &status,
	)
	assert.False(t, status.Following)
}

func Test_ToggleFollow_SelfFollowRejected(t *testing.T) {
	router := users_testing.CreateTestRouter(GetFollowController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/follows/%s/toggle", user.UserID),
		"Bearer "+user.Token,
		nil,
		http.StatusBadRequest,
	)
}

func Test_ToggleFollow_UnknownUserRejected(t *testing.T) {
	router := users_testing.CreateTestRouter(GetFollowController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/follows/%s/toggle", uuid.New()),
		"Bearer "+user.Token,
		nil,
		http.StatusNotFound,
	)
}

func Test_FollowingFeed_ShowsFollowedAuthorsPostsOnly(t *testing.T) {
	router := users_testing.CreateTestRouter(GetFollowController(), blogs.GetBlogController())
	follower := users_testing.CreateTestUser()
	followed := users_testing.CreateTestUser()
	unfollowed := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/blogs",
		"Bearer "+followed.Token,
		blogs.CreatePostRequestDTO{
			Title:   "From followed author",
			Slug:    "feed-a-" + uuid.New().String()[:8],
			Content: "content",
		},
		http.StatusOK,
	)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/blogs",
		"Bearer "+unfollowed.Token,
		blogs.CreatePostRequestDTO{
			Title:   "From unfollowed author",
			Slug:    "feed-b-" + uuid.New().String()[:8],
			Content: "content",
		},
		http.StatusOK,
	)

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/follows/%s/toggle", followed.UserID),
		"Bearer "+follower.Token,
		nil,
		http.StatusOK,
	)

	var feed FeedResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/follows/feed", "Bearer "+follower.Token, http.StatusOK, &feed,
	)

	require.Len(t, feed.Posts, 1)
	assert.Equal(t, followed.UserID, feed.Posts[0].AuthorID)

	var following FollowingListResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/follows", "Bearer "+follower.Token, http.StatusOK, &following,
	)
	assert.Equal(t, []uuid.UUID{followed.UserID}, following.UserIDs)
}

func Test_FollowingFeed_EmptyWhenFollowingNobody(t *testing.T) {
	router := users_testing.CreateTestRouter(GetFollowController())
	loner := users_testing.CreateTestUser()

	var feed FeedResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/follows/feed", "Bearer "+loner.Token, http.StatusOK, &feed,
	)

	assert.Empty(t, feed.Posts)
}
