package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

var ErrNotFound = errors.New("not found")

// FeedService handles the family feed: posts, likes and comments
type FeedService struct {
	feedRepo *repository.FeedRepository
	access   *AccessService
}

// NewFeedService creates a new feed service
func NewFeedService(feedRepo *repository.FeedRepository, access *AccessService) *FeedService {
	return &FeedService{feedRepo: feedRepo, access: access}
}

// CreatePost publishes a post to the author's family feed
func (s *FeedService) CreatePost(user *models.User, content, location string) (int64, error) {
	if err := s.access.Authorize(user, ResourceFeed, user.FamilyCode); err != nil {
		return 0, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return 0, validation.ValidationError{Field: "content", Message: "post content is required"}
	}

	return s.feedRepo.CreatePost(user.ID, content, strings.TrimSpace(location))
}

// GetFeed returns the caller's family feed with like counts, the caller's
// own liked flag and comments attached.
func (s *FeedService) GetFeed(user *models.User) ([]models.Post, error) {
	if err := s.access.Authorize(user, ResourceFeed, user.FamilyCode); err != nil {
		return nil, err
	}

	posts, err := s.feedRepo.GetFamilyPosts(user.FamilyCode)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		likes, err := s.feedRepo.CountLikes(posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].LikeCount = likes

		liked, err := s.feedRepo.HasLiked(posts[i].ID, user.ID)
		if err != nil {
			return nil, err
		}
		posts[i].Liked = liked

		comments, err := s.feedRepo.GetComments(posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Comments = comments
	}

	return posts, nil
}

// ToggleLike likes a post if the caller has not liked it yet, or removes the
// like if they have. Only posts inside the caller's family can be touched.
func (s *FeedService) ToggleLike(user *models.User, postID int64) error {
	if err := s.authorizePost(user, postID); err != nil {
		return err
	}

	liked, err := s.feedRepo.HasLiked(postID, user.ID)
	if err != nil {
		return err
	}
	if liked {
		return s.feedRepo.UnlikePost(postID, user.ID)
	}
	return s.feedRepo.LikePost(postID, user.ID)
}

// AddComment adds a comment to a post inside the caller's family
func (s *FeedService) AddComment(user *models.User, postID int64, body string) error {
	if err := s.authorizePost(user, postID); err != nil {
		return err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return validation.ValidationError{Field: "comment", Message: "comment is required"}
	}

	if _, err := s.feedRepo.AddComment(postID, user.ID, body); err != nil {
		return err
	}
	return nil
}

func (s *FeedService) authorizePost(user *models.User, postID int64) error {
	familyCode, err := s.feedRepo.GetPostAuthorFamily(postID)
	if err != nil {
		return err
	}
	if familyCode == "" {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	return s.access.Authorize(user, ResourceFeed, familyCode)
}
