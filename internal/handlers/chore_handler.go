package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// ChoreHandler handles the family chore board pages
type ChoreHandler struct {
	choreService  *service.ChoreService
	familyService *service.FamilyService
	templates     *template.Template
	csrf          *security.CSRFGenerator
}

// NewChoreHandler creates a new chore handler
func NewChoreHandler(choreService *service.ChoreService, familyService *service.FamilyService,
	templates *template.Template, csrf *security.CSRFGenerator) *ChoreHandler {
	return &ChoreHandler{
		choreService:  choreService,
		familyService: familyService,
		templates:     templates,
		csrf:          csrf,
	}
}

// ShowChores renders the family chore board
func (h *ChoreHandler) ShowChores(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	chores, err := h.choreService.GetChores(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading chores")
		return
	}

	members, err := h.familyService.GetMembers(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading family members")
		return
	}

	render(w, h.templates, "chores.tmpl", map[string]interface{}{
		"Title":     "Chore Board - Together",
		"User":      user,
		"Chores":    chores,
		"Members":   members,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// CreateChore handles new chore submission
func (h *ChoreHandler) CreateChore(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	reward, _ := strconv.Atoi(r.FormValue("reward"))
	if _, err := h.choreService.CreateChore(user, r.FormValue("task"), r.FormValue("assigned_to"), reward); err != nil {
		respondWithServiceError(w, err, "Error creating chore")
		return
	}

	http.Redirect(w, r, "/chores", http.StatusSeeOther)
}

// CompleteChore marks a chore done
func (h *ChoreHandler) CompleteChore(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	choreID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid chore ID", http.StatusBadRequest)
		return
	}

	if err := h.choreService.CompleteChore(user, choreID); err != nil {
		respondWithServiceError(w, err, "Error completing chore")
		return
	}

	http.Redirect(w, r, "/chores", http.StatusSeeOther)
}
