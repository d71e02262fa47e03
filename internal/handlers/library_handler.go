package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// LibraryHandler handles the family book library pages
type LibraryHandler struct {
	libraryService *service.LibraryService
	templates      *template.Template
	csrf           *security.CSRFGenerator
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryService *service.LibraryService, templates *template.Template, csrf *security.CSRFGenerator) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService, templates: templates, csrf: csrf}
}

// ShowLibrary renders the family book library
func (h *LibraryHandler) ShowLibrary(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	books, err := h.libraryService.GetBooks(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading library")
		return
	}

	render(w, h.templates, "library.tmpl", map[string]interface{}{
		"Title":     "Book Library - Together",
		"User":      user,
		"Books":     books,
		"AgeGroups": models.AgeGroups,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// AddBook handles a book recommendation submission
func (h *LibraryHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	_, err := h.libraryService.AddBook(user,
		r.FormValue("title"),
		r.FormValue("author"),
		r.FormValue("url"),
		r.FormValue("age_group"),
	)
	if err != nil {
		respondWithServiceError(w, err, "Error adding book")
		return
	}

	http.Redirect(w, r, "/library", http.StatusSeeOther)
}

// ReviewBook handles a book review submission
func (h *LibraryHandler) ReviewBook(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	bookID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid book ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	if err := h.libraryService.ReviewBook(user, bookID, rating, r.FormValue("review")); err != nil {
		respondWithServiceError(w, err, "Error reviewing book")
		return
	}

	http.Redirect(w, r, "/library", http.StatusSeeOther)
}
