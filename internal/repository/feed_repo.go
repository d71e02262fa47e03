package repository

import (
	"database/sql"
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// FeedRepository handles database operations for posts, likes and comments
type FeedRepository struct {
	db *database.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *database.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// CreatePost inserts a new post
func (r *FeedRepository) CreatePost(userID int64, content, location string) (int64, error) {
	query := "INSERT INTO posts (user_id, content, location) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, userID, content, location)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}
	return id, nil
}

// GetFamilyPosts retrieves all posts by members of a family, newest first.
// Author handle and avatar come from the users row, so avatar updates are
// reflected everywhere immediately.
func (r *FeedRepository) GetFamilyPosts(familyCode string) ([]models.Post, error) {
	query := `
		SELECT p.id, p.user_id, u.handle, u.avatar, p.content, p.location, p.created_at
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE u.family_code = ?
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Handle, &post.Avatar,
			&post.Content, &post.Location, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// CountLikes returns the number of likes on a post
func (r *FeedRepository) CountLikes(postID int64) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM post_likes WHERE post_id = ?"
	if err := r.db.QueryRow(query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// HasLiked checks if a user already liked a post
func (r *FeedRepository) HasLiked(postID, userID int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM post_likes WHERE post_id = ? AND user_id = ?"
	if err := r.db.QueryRow(query, postID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// LikePost records a like; liking twice is a no-op thanks to the unique
// (post_id, user_id) constraint.
func (r *FeedRepository) LikePost(postID, userID int64) error {
	query := "INSERT INTO post_likes (post_id, user_id) VALUES (?, ?)"
	if _, err := r.db.Exec(query, postID, userID); err != nil {
		if r.db.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to like post: %w", err)
	}
	return nil
}

// UnlikePost removes a like
func (r *FeedRepository) UnlikePost(postID, userID int64) error {
	query := "DELETE FROM post_likes WHERE post_id = ? AND user_id = ?"
	if _, err := r.db.Exec(query, postID, userID); err != nil {
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	return nil
}

// GetPostAuthorFamily returns the family code of a post's author, or "" if
// the post does not exist. Used to scope like/comment mutations to the
// caller's family.
func (r *FeedRepository) GetPostAuthorFamily(postID int64) (string, error) {
	var familyCode string
	query := `
		SELECT u.family_code FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.id = ?
	`
	err := r.db.QueryRow(query, postID).Scan(&familyCode)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve post family: %w", err)
	}
	return familyCode, nil
}

// AddComment inserts a comment on a post
func (r *FeedRepository) AddComment(postID, userID int64, body string) (int64, error) {
	query := "INSERT INTO post_comments (post_id, user_id, comment) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, postID, userID, body)
	if err != nil {
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}
	return id, nil
}

// GetComments retrieves all comments on a post, oldest first
func (r *FeedRepository) GetComments(postID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, u.handle, c.comment, c.created_at
		FROM post_comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC
	`
	rows, err := r.db.Query(query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Handle, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
