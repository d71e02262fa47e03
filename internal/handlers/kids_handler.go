package handlers

import (
	"html/template"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// KidsHandler handles the restricted-only surfaces: the learning hub and the
// safe browser.
type KidsHandler struct {
	safetyService *service.SafetyService
	templates     *template.Template
	csrf          *security.CSRFGenerator
}

// NewKidsHandler creates a new kids handler
func NewKidsHandler(safetyService *service.SafetyService, templates *template.Template, csrf *security.CSRFGenerator) *KidsHandler {
	return &KidsHandler{safetyService: safetyService, templates: templates, csrf: csrf}
}

// ShowBrowser renders the safe browser site list
func (h *KidsHandler) ShowBrowser(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	sites, err := h.safetyService.GetSafeSites(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading safe sites")
		return
	}

	render(w, h.templates, "browser.tmpl", map[string]interface{}{
		"Title": "Safe Browser - Together",
		"User":  user,
		"Sites": sites,
	})
}

// ShowLearning renders the learning hub and the caller's learning log
func (h *KidsHandler) ShowLearning(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	records, err := h.safetyService.GetLearningLog(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading learning log")
		return
	}

	render(w, h.templates, "learning.tmpl", map[string]interface{}{
		"Title":     "Learning Hub - Together",
		"User":      user,
		"Records":   records,
		"Scores":    models.LearningScores,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// RecordLearning handles a learning activity submission
func (h *KidsHandler) RecordLearning(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.safetyService.RecordLearning(user, r.FormValue("topic"), r.FormValue("score")); err != nil {
		respondWithServiceError(w, err, "Error recording learning activity")
		return
	}

	http.Redirect(w, r, "/kids/learning", http.StatusSeeOther)
}
