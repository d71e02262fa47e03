package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/security"
)

func render(w http.ResponseWriter, templates *template.Template, name string, data map[string]interface{}) {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s template: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// csrfToken derives the caller's CSRF token from their session cookie.
// Returns an empty string when there is no session; forms rendered without a
// session never submit successfully anyway.
func csrfToken(r *http.Request, csrf *security.CSRFGenerator) string {
	cookie, err := r.Cookie(security.SessionCookieName)
	if err != nil {
		return ""
	}
	token, err := csrf.GenerateToken(cookie.Value)
	if err != nil {
		return ""
	}
	return token
}
