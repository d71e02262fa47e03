package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/kingctheceo/togther-app-2/internal/service"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}

// respondWithServiceError maps service errors to HTTP responses: access
// denials become 403, missing records 404, validation failures 400 with the
// field message, everything else a logged 500.
func respondWithServiceError(w http.ResponseWriter, err error, logMsg string) {
	var validationErr validation.ValidationError
	switch {
	case errors.Is(err, service.ErrAccessDenied):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", logMsg, err)
	}
}
