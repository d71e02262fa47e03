package models

import "time"

// Post is a feed entry shared with the author's family
type Post struct {
	ID        int64
	UserID    int64
	Handle    string
	Avatar    string
	Content   string
	Location  string
	CreatedAt time.Time

	// Populated for rendering
	LikeCount int
	Liked     bool
	Comments  []Comment
}

// Comment is a reply on a post
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Handle    string
	Body      string
	CreatedAt time.Time
}
