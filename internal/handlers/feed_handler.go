package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// FeedHandler handles the family feed pages
type FeedHandler struct {
	feedService *service.FeedService
	templates   *template.Template
	csrf        *security.CSRFGenerator
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *service.FeedService, templates *template.Template, csrf *security.CSRFGenerator) *FeedHandler {
	return &FeedHandler{feedService: feedService, templates: templates, csrf: csrf}
}

// ShowFeed renders the family feed
func (h *FeedHandler) ShowFeed(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	posts, err := h.feedService.GetFeed(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading feed")
		return
	}

	render(w, h.templates, "feed.tmpl", map[string]interface{}{
		"Title":     "Family Feed - Together",
		"User":      user,
		"Posts":     posts,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// CreatePost handles new post submission
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if _, err := h.feedService.CreatePost(user, r.FormValue("content"), r.FormValue("location")); err != nil {
		respondWithServiceError(w, err, "Error creating post")
		return
	}

	http.Redirect(w, r, "/feed", http.StatusSeeOther)
}

// ToggleLike likes or unlikes a post
func (h *FeedHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := h.feedService.ToggleLike(user, postID); err != nil {
		respondWithServiceError(w, err, "Error toggling like")
		return
	}

	http.Redirect(w, r, "/feed", http.StatusSeeOther)
}

// AddComment handles comment submission on a post
func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.feedService.AddComment(user, postID, r.FormValue("comment")); err != nil {
		respondWithServiceError(w, err, "Error adding comment")
		return
	}

	http.Redirect(w, r, "/feed", http.StatusSeeOther)
}
