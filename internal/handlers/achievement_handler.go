package handlers

import (
	"html/template"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// AchievementHandler handles the family achievement wall pages
type AchievementHandler struct {
	achievementService *service.AchievementService
	templates          *template.Template
	csrf               *security.CSRFGenerator
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievementService *service.AchievementService, templates *template.Template, csrf *security.CSRFGenerator) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService, templates: templates, csrf: csrf}
}

// ShowAchievements renders the family achievement wall
func (h *AchievementHandler) ShowAchievements(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	achievements, err := h.achievementService.GetAchievements(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading achievements")
		return
	}

	render(w, h.templates, "achievements.tmpl", map[string]interface{}{
		"Title":        "Achievements - Together",
		"User":         user,
		"Achievements": achievements,
		"CSRFToken":    csrfToken(r, h.csrf),
	})
}

// Celebrate handles a new achievement submission
func (h *AchievementHandler) Celebrate(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.achievementService.Celebrate(user, r.FormValue("title"), r.FormValue("description")); err != nil {
		respondWithServiceError(w, err, "Error recording achievement")
		return
	}

	http.Redirect(w, r, "/achievements", http.StatusSeeOther)
}
