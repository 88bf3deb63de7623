package blogs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"safetybot-backend/internal/features/audit_logs"
	users_models "safetybot-backend/internal/features/users/models"
	"safetybot-backend/internal/util/logger"

	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("blog post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrSlugTaken = errors.New("slug already in use")

var log = logger.GetLogger()

type BlogService struct {
	blogRepository  *BlogRepository
	auditLogService *audit_logs.AuditLogService
}

func (s *BlogService) CreatePost(
	author *users_models.User,
	request *CreatePostRequestDTO,
) (*BlogPost, error) {
	existing, err := s.blogRepository.GetPostBySlug(request.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	date := time.Now().UTC()
	if request.Date != "" {
		parsed, err := parsePostDate(request.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	readTime := request.ReadTime
	if readTime <= 0 {
		readTime = estimateReadTime(request.Content)
	}

	post := &BlogPost{
		ID:           uuid.New(),
		AuthorID:     author.ID,
		AuthorName:   author.DisplayName,
		AuthorAvatar: author.PhotoURL,
		Title:        request.Title,
		Slug:         request.Slug,
		Excerpt:      request.Excerpt,
		Content:      request.Content,
		CoverImage:   request.CoverImage,
		Category:     request.Category,
		Tags:         request.Tags,
		ReadTime:     readTime,
		Date:         date,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.blogRepository.CreatePost(post); err != nil {
		return nil, err
	}

	log.Info("Blog post created", "postId", post.ID, "authorId", author.ID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Blog post created: %s", post.Slug),
		&author.ID,
	)

	return post, nil
}

func (s *BlogService) GetAllPosts() ([]*BlogPost, error) {
	return s.blogRepository.GetAllPosts()
}

func (s *BlogService) GetPostsByAuthor(authorID uuid.UUID) ([]*BlogPost, error) {
	return s.blogRepository.GetPostsByAuthor(authorID)
}

func (s *BlogService) GetPostsByAuthors(authorIDs []uuid.UUID) ([]*BlogPost, error) {
	if len(authorIDs) == 0 {
		return []*BlogPost{}, nil
	}

	return s.blogRepository.GetPostsByAuthors(authorIDs)
}

func (s *BlogService) GetPostsByCategory(category string) ([]*BlogPost, error) {
	return s.blogRepository.GetPostsByCategory(category)
}

func (s *BlogService) GetPostsByTag(tag string) ([]*BlogPost, error) {
	posts, err := s.blogRepository.GetAllPosts()
	if err != nil {
		return nil, err
	}

	matched := make([]*BlogPost, 0)
	for _, post := range posts {
		for _, postTag := range post.Tags {
			if strings.EqualFold(postTag, tag) {
				matched = append(matched, post)
				break
			}
		}
	}

	return matched, nil
}

func (s *BlogService) GetAllTags() ([]string, error) {
	posts, err := s.blogRepository.GetAllPosts()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, post := range posts {
		for _, tag := range post.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	sort.Strings(tags)
	return tags, nil
}

func (s *BlogService) SearchPosts(term string) ([]*BlogPost, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*BlogPost{}, nil
	}

	return s.blogRepository.SearchPosts(term)
}

func (s *BlogService) GetPostBySlug(slug string) (*BlogPost, error) {
	post, err := s.blogRepository.GetPostBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *BlogService) DeletePost(postID, authorID uuid.UUID) error {
	deleted, err := s.blogRepository.DeletePost(postID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}

	log.Info("Blog post deleted", "postId", postID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Blog post deleted (ID: %s)", postID),
		&authorID,
	)

	return nil
}

func (s *BlogService) ToggleLike(postID, userID uuid.UUID) (*ToggleResponseDTO, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	active, count, err := s.blogRepository.TogglePostLike(postID, userID)
	if err != nil {
		return nil, err
	}

	return &ToggleResponseDTO{Active: active, Count: count}, nil
}

func (s *BlogService) ToggleBookmark(postID, userID uuid.UUID) (*ToggleResponseDTO, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	active, count, err := s.blogRepository.TogglePostBookmark(postID, userID)
	if err != nil {
		return nil, err
	}

	return &ToggleResponseDTO{Active: active, Count: count}, nil
}

func (s *BlogService) GetPostStatus(postID, userID uuid.UUID) (*PostStatusResponseDTO, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	liked, err := s.blogRepository.HasUserLikedPost(postID, userID)
	if err != nil {
		return nil, err
	}

	bookmarked, err := s.blogRepository.HasUserBookmarkedPost(postID, userID)
	if err != nil {
		return nil, err
	}

	return &PostStatusResponseDTO{PostID: postID, Liked: liked, Bookmarked: bookmarked}, nil
}

func (s *BlogService) AddComment(
	postID uuid.UUID,
	author *users_models.User,
	content string,
) (*Comment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:           uuid.New(),
		PostID:       postID,
		AuthorID:     author.ID,
		AuthorName:   author.DisplayName,
		AuthorAvatar: author.PhotoURL,
		Content:      content,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.blogRepository.AddComment(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *BlogService) GetComments(postID uuid.UUID) ([]*Comment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	return s.blogRepository.GetComments(postID)
}

func (s *BlogService) DeleteComment(postID, commentID, authorID uuid.UUID) error {
	deleted, err := s.blogRepository.DeleteComment(postID, commentID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}

	return nil
}

func (s *BlogService) ToggleCommentLike(commentID, userID uuid.UUID) (*ToggleResponseDTO, error) {
	comment, err := s.blogRepository.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	active, count, err := s.blogRepository.ToggleCommentLike(commentID, userID)
	if err != nil {
		return nil, err
	}

	return &ToggleResponseDTO{Active: active, Count: count}, nil
}

func (s *BlogService) ensurePostExists(postID uuid.UUID) error {
	post, err := s.blogRepository.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	return nil
}

func parsePostDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed.UTC(), nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC 3339")
	}

	return parsed.UTC(), nil
}

// estimateReadTime assumes ~200 words per minute, minimum one minute.
func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}
