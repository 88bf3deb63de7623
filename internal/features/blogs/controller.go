package blogs

import (
	"errors"
	"net/http"

	users_middleware "safetybot-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlogController struct {
	service *BlogService
}

func (c *BlogController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/blogs", c.CreatePost)
	router.GET("/blogs", c.ListPosts)
	router.GET("/blogs/tags", c.ListTags)
	router.GET("/blogs/slug/:slug", c.GetPostBySlug)
	router.DELETE("/blogs/:id", c.DeletePost)
	router.GET("/blogs/:id/status", c.GetPostStatus)
	router.POST("/blogs/:id/like", c.ToggleLike)
	router.POST("/blogs/:id/bookmark", c.ToggleBookmark)
	router.POST("/blogs/:id/comments", c.AddComment)
	router.GET("/blogs/:id/comments", c.GetComments)
	router.DELETE("/blogs/:id/comments/:commentId", c.DeleteComment)
	router.POST("/blogs/comments/:commentId/like", c.ToggleCommentLike)
}

// CreatePost
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequestDTO true "Post data"
// @Success 200 {object} BlogPost
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /blogs [post]
func (c *BlogController) CreatePost(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreatePostRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title, slug and content are required"})
		return
	}

	post, err := c.service.CreatePost(user, &request)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "A post with this slug already exists"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// ListPosts
// @Summary List blog posts
// @Description Supports ?author=, ?category=, ?tag= and ?search= filters; without filters returns all posts, newest first
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param author query string false "Author ID"
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param search query string false "Search term"
// @Success 200 {object} ListPostsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /blogs [get]
func (c *BlogController) ListPosts(ctx *gin.Context) {
	var posts []*BlogPost
	var err error

	switch {
	case ctx.Query("author") != "":
		var authorID uuid.UUID
		authorID, err = uuid.Parse(ctx.Query("author"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
			return
		}
		posts, err = c.service.GetPostsByAuthor(authorID)
	case ctx.Query("category") != "":
		posts, err = c.service.GetPostsByCategory(ctx.Query("category"))
	case ctx.Query("tag") != "":
		posts, err = c.service.GetPostsByTag(ctx.Query("tag"))
	case ctx.Query("search") != "":
		posts, err = c.service.SearchPosts(ctx.Query("search"))
	default:
		posts, err = c.service.GetAllPosts()
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve blog posts"})
		return
	}

	ctx.JSON(http.StatusOK, ListPostsResponseDTO{Posts: posts})
}

// ListTags
// @Summary List all tags in use
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListTagsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /blogs/tags [get]
func (c *BlogController) ListTags(ctx *gin.Context) {
	tags, err := c.service.GetAllTags()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	ctx.JSON(http.StatusOK, ListTagsResponseDTO{Tags: tags})
}

// GetPostBySlug
// @Summary Get a blog post by slug
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Post slug"
// @Success 200 {object} BlogPost
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/slug/{slug} [get]
func (c *BlogController) GetPostBySlug(ctx *gin.Context) {
	post, err := c.service.GetPostBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve blog post"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// DeletePost
// @Summary Delete own blog post
// @Tags blogs
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id} [delete]
func (c *BlogController) DeletePost(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := c.service.DeletePost(postID, user.ID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

// GetPostStatus
// @Summary Whether the current user has liked or bookmarked a post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} PostStatusResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id}/status [get]
func (c *BlogController) GetPostStatus(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	status, err := c.service.GetPostStatus(postID, user.ID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post status"})
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// ToggleLike
// @Summary Toggle a like on a post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} ToggleResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id}/like [post]
func (c *BlogController) ToggleLike(ctx *gin.Context) {
	c.togglePostAction(ctx, c.service.ToggleLike)
}

// ToggleBookmark
// @Summary Toggle a bookmark on a post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} ToggleResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id}/bookmark [post]
func (c *BlogController) ToggleBookmark(ctx *gin.Context) {
	c.togglePostAction(ctx, c.service.ToggleBookmark)
}

func (c *BlogController) togglePostAction(
	ctx *gin.Context,
	toggle func(postID, userID uuid.UUID) (*ToggleResponseDTO, error),
) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	response, err := toggle(postID, user.ID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AddComment
// @Summary Add a comment to a post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body AddCommentRequestDTO true "Comment data"
// @Success 200 {object} Comment
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id}/comments [post]
func (c *BlogController) AddComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var request AddCommentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	comment, err := c.service.AddComment(postID, user, request.Content)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

// GetComments
// @Summary List comments for a post, newest first
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} ListCommentsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id}/comments [get]
func (c *BlogController) GetComments(ctx *gin.Context) {
	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	comments, err := c.service.GetComments(postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	ctx.JSON(http.StatusOK, ListCommentsResponseDTO{Comments: comments})
}

// DeleteComment
// @Summary Delete own comment
// @Tags blogs
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/{id}/comments/{commentId} [delete]
func (c *BlogController) DeleteComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	commentID, err := uuid.Parse(ctx.Param("commentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if err := c.service.DeleteComment(postID, commentID, user.ID); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ToggleCommentLike
// @Summary Toggle a like on a comment
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} ToggleResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blogs/comments/{commentId}/like [post]
func (c *BlogController) ToggleCommentLike(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	commentID, err := uuid.Parse(ctx.Param("commentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	response, err := c.service.ToggleCommentLike(commentID, user.ID)
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle comment like"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
