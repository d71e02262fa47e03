package handlers

import (
	"html/template"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// SafetyHandler handles emergency alerts and safe site management
type SafetyHandler struct {
	safetyService *service.SafetyService
	templates     *template.Template
	csrf          *security.CSRFGenerator
}

// NewSafetyHandler creates a new safety handler
func NewSafetyHandler(safetyService *service.SafetyService, templates *template.Template, csrf *security.CSRFGenerator) *SafetyHandler {
	return &SafetyHandler{safetyService: safetyService, templates: templates, csrf: csrf}
}

// ShowAlerts renders the family alert history. Any member can view alerts;
// only parents see the send form.
func (h *SafetyHandler) ShowAlerts(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	alerts, err := h.safetyService.GetAlerts(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading alerts")
		return
	}

	render(w, h.templates, "alerts.tmpl", map[string]interface{}{
		"Title":     "Emergency Alerts - Together",
		"User":      user,
		"Alerts":    alerts,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// SendAlert handles an emergency alert submission (parents only)
func (h *SafetyHandler) SendAlert(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.safetyService.SendAlert(r.Context(), user, r.FormValue("message")); err != nil {
		respondWithServiceError(w, err, "Error sending alert")
		return
	}

	http.Redirect(w, r, "/alerts", http.StatusSeeOther)
}

// ShowSiteManager renders the safe site management page (parents only)
func (h *SafetyHandler) ShowSiteManager(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	sites, err := h.safetyService.GetManagedSites(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading safe sites")
		return
	}

	render(w, h.templates, "sites.tmpl", map[string]interface{}{
		"Title":     "Safe Sites - Together",
		"User":      user,
		"Sites":     sites,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// ApproveSite handles a safe site submission (parents only)
func (h *SafetyHandler) ApproveSite(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.safetyService.ApproveSite(user, r.FormValue("name"), r.FormValue("url"), r.FormValue("description")); err != nil {
		respondWithServiceError(w, err, "Error approving site")
		return
	}

	http.Redirect(w, r, "/family/sites", http.StatusSeeOther)
}
