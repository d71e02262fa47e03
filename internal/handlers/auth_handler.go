package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// AuthHandler handles login, signup and logout
type AuthHandler struct {
	authService       *service.AuthService
	enrollmentService *service.EnrollmentService
	templates         *template.Template
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, enrollmentService *service.EnrollmentService, templates *template.Template) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		enrollmentService: enrollmentService,
		templates:         templates,
	}
}

// Home redirects signed-in users to the feed and everyone else to login
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		if _, err := h.authService.ValidateSession(cookie.Value); err == nil {
			http.Redirect(w, r, "/feed", http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowLogin renders the login page
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		if _, err := h.authService.ValidateSession(cookie.Value); err == nil {
			http.Redirect(w, r, "/feed", http.StatusSeeOther)
			return
		}
	}

	render(w, h.templates, "login.tmpl", map[string]interface{}{
		"Title":  "Sign In - Together",
		"Handle": "",
	})
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	handle := r.FormValue("handle")
	password := r.FormValue("password")

	session, _, err := h.authService.Authenticate(handle, password)
	if err != nil {
		render(w, h.templates, "login.tmpl", map[string]interface{}{
			"Title":  "Sign In - Together",
			"Error":  "Invalid handle or password",
			"Handle": handle,
		})
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, security.SessionCookieName, session.ID, session.ExpiresAt))
	http.Redirect(w, r, "/feed", http.StatusSeeOther)
}

// ShowSignup renders the signup page. With an invite_code query parameter the
// join-family variant is pre-filled, including the guardian choices for
// under-13 signups.
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	inviteCode := r.URL.Query().Get("invite_code")

	data := map[string]interface{}{
		"Title":      "Join Together",
		"InviteCode": inviteCode,
		"Name":       "",
		"Handle":     "",
		"Email":      "",
		"FamilyName": "",
		"Age":        0,
	}
	if inviteCode != "" {
		if guardians, err := h.enrollmentService.EligibleGuardians(inviteCode); err == nil {
			data["Guardians"] = guardians
		}
	}

	render(w, h.templates, "signup.tmpl", data)
}

// Signup handles signup form submission. Posting a family_name starts a new
// family with the caller as founder; posting an invite_code joins an
// existing one.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	age, _ := strconv.Atoi(r.FormValue("age"))
	enrollment := service.Enrollment{
		Name:     r.FormValue("name"),
		Handle:   r.FormValue("handle"),
		Password: r.FormValue("password"),
		Age:      age,
		Email:    r.FormValue("email"),
		Avatar:   r.FormValue("avatar"),
		Bio:      r.FormValue("bio"),
		Controls: r.FormValue("parental_controls") == "on",
	}
	if g := r.FormValue("guardian_id"); g != "" {
		if id, err := strconv.ParseInt(g, 10, 64); err == nil {
			enrollment.GuardianID = &id
		}
	}

	familyName := r.FormValue("family_name")
	inviteCode := r.FormValue("invite_code")

	var err error
	if inviteCode != "" {
		_, err = h.enrollmentService.EnrollMember(inviteCode, enrollment)
	} else {
		_, _, err = h.enrollmentService.CreateFamilyAndFounder(familyName, enrollment)
	}
	if err != nil {
		h.renderSignupError(w, r, err, enrollment, familyName, inviteCode)
		return
	}

	// Auto-login after signup
	session, _, err := h.authService.Authenticate(enrollment.Handle, enrollment.Password)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, security.SessionCookieName, session.ID, session.ExpiresAt))
	http.Redirect(w, r, "/feed", http.StatusSeeOther)
}

func (h *AuthHandler) renderSignupError(w http.ResponseWriter, r *http.Request, err error,
	enrollment service.Enrollment, familyName, inviteCode string) {
	var validationErr validation.ValidationError

	var msg string
	switch {
	case errors.Is(err, service.ErrDuplicateHandle):
		msg = "That handle is already taken"
	case errors.Is(err, service.ErrInvalidInviteCode):
		msg = "That invite code does not match any family"
	case errors.Is(err, service.ErrMissingGuardianLink):
		msg = "Members under 13 need a guardian — pick a parent from the family"
	case errors.As(err, &validationErr):
		msg = validationErr.Message
	default:
		log.Printf("Signup failed: %v", err)
		msg = "Something went wrong — please try again"
	}

	data := map[string]interface{}{
		"Title":      "Join Together",
		"Error":      msg,
		"Name":       enrollment.Name,
		"Handle":     enrollment.Handle,
		"Age":        enrollment.Age,
		"Email":      enrollment.Email,
		"FamilyName": familyName,
		"InviteCode": inviteCode,
	}
	if inviteCode != "" {
		if guardians, gErr := h.enrollmentService.EligibleGuardians(inviteCode); gErr == nil {
			data["Guardians"] = guardians
		}
	}

	render(w, h.templates, "signup.tmpl", data)
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		_ = h.authService.Logout(cookie.Value)
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, security.SessionCookieName))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
