package handlers

import (
	"html/template"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// MoodHandler handles mood check-ins and journal pages
type MoodHandler struct {
	moodService *service.MoodService
	templates   *template.Template
	csrf        *security.CSRFGenerator
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService *service.MoodService, templates *template.Template, csrf *security.CSRFGenerator) *MoodHandler {
	return &MoodHandler{moodService: moodService, templates: templates, csrf: csrf}
}

// ShowMood renders the mood wall and the caller's private journal
func (h *MoodHandler) ShowMood(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	moods, err := h.moodService.GetFamilyMoods(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading moods")
		return
	}

	journal, err := h.moodService.GetJournal(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading journal")
		return
	}

	render(w, h.templates, "mood.tmpl", map[string]interface{}{
		"Title":       "Mood & Journal - Together",
		"User":        user,
		"Moods":       moods,
		"Journal":     journal,
		"MoodOptions": models.MoodOptions,
		"CSRFToken":   csrfToken(r, h.csrf),
	})
}

// CheckIn handles a mood check-in submission
func (h *MoodHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.moodService.CheckIn(user, r.FormValue("mood")); err != nil {
		respondWithServiceError(w, err, "Error recording mood")
		return
	}

	http.Redirect(w, r, "/mood", http.StatusSeeOther)
}

// AddJournalEntry handles a private journal entry submission
func (h *MoodHandler) AddJournalEntry(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.moodService.AddJournalEntry(user, r.FormValue("content")); err != nil {
		respondWithServiceError(w, err, "Error saving journal entry")
		return
	}

	http.Redirect(w, r, "/mood", http.StatusSeeOther)
}
