package handlers

import (
	"html/template"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

// MessageHandler handles direct message pages
type MessageHandler struct {
	messageService *service.MessageService
	familyService  *service.FamilyService
	templates      *template.Template
	csrf           *security.CSRFGenerator
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService, familyService *service.FamilyService,
	templates *template.Template, csrf *security.CSRFGenerator) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		familyService:  familyService,
		templates:      templates,
		csrf:           csrf,
	}
}

// ShowMessages renders the messages page: the member list and, when a chat
// partner is selected, the conversation with them.
func (h *MessageHandler) ShowMessages(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	members, err := h.familyService.GetMembers(user)
	if err != nil {
		respondWithServiceError(w, err, "Error loading family members")
		return
	}

	data := map[string]interface{}{
		"Title":     "Messages - Together",
		"User":      user,
		"Members":   members,
		"CSRFToken": csrfToken(r, h.csrf),
	}

	if with := r.URL.Query().Get("with"); with != "" {
		conversation, err := h.messageService.GetConversation(user, with)
		if err != nil {
			respondWithServiceError(w, err, "Error loading conversation")
			return
		}
		data["With"] = with
		data["Conversation"] = conversation
	}

	render(w, h.templates, "messages.tmpl", data)
}

// SendMessage handles a direct message submission
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	recipient := r.FormValue("recipient")
	if err := h.messageService.SendMessage(user, recipient, r.FormValue("message")); err != nil {
		respondWithServiceError(w, err, "Error sending message")
		return
	}

	http.Redirect(w, r, "/messages?with="+recipient, http.StatusSeeOther)
}
