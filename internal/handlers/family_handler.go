package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// FamilyHandler handles family membership, profile and location pages
type FamilyHandler struct {
	familyService *service.FamilyService
	templates     *template.Template
	csrf          *security.CSRFGenerator
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(familyService *service.FamilyService, templates *template.Template, csrf *security.CSRFGenerator) *FamilyHandler {
	return &FamilyHandler{familyService: familyService, templates: templates, csrf: csrf}
}

// ShowFamily renders the family page: members and the invite code
func (h *FamilyHandler) ShowFamily(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	family, err := h.familyService.GetFamily(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading family")
		return
	}

	members, err := h.familyService.GetMembers(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading family members")
		return
	}

	render(w, h.templates, "family.tmpl", map[string]interface{}{
		"Title":     "My Family - Together",
		"User":      user,
		"Family":    family,
		"Members":   members,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// UpdateAvatar handles an avatar change submission
func (h *FamilyHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := h.familyService.UpdateAvatar(user, r.FormValue("avatar")); err != nil {
		respondWithServiceError(w, err, "Error updating avatar")
		return
	}

	http.Redirect(w, r, "/family", http.StatusSeeOther)
}

// ShowLocations renders the family location map
func (h *FamilyHandler) ShowLocations(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	locations, err := h.familyService.GetLocations(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading locations")
		return
	}

	render(w, h.templates, "locations.tmpl", map[string]interface{}{
		"Title":     "Family Locations - Together",
		"User":      user,
		"Locations": locations,
		"CSRFToken": csrfToken(r, h.csrf),
	})
}

// CheckInLocation handles a location check-in submission
func (h *FamilyHandler) CheckInLocation(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	lat, err := strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		http.Error(w, "Invalid latitude", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		http.Error(w, "Invalid longitude", http.StatusBadRequest)
		return
	}

	if err := h.familyService.CheckInLocation(user, r.FormValue("name"), lat, lon, r.FormValue("notes")); err != nil {
		respondWithServiceError(w, err, "Error checking in location")
		return
	}

	http.Redirect(w, r, "/locations", http.StatusSeeOther)
}
