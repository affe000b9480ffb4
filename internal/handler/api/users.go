package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/persnickety/venues-ms-go/internal/api_context"
	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/user"
	"github.com/persnickety/venues-ms-go/internal/validation"
)

type FindOrCreateUserRequest struct {
	Token string `json:"token" validate:"required"`
}

// FindOrCreateUserHandler resolves a device token to its user record,
// creating the user on first sight.
func FindOrCreateUserHandler(svc port.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FindOrCreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		usr, err := svc.FindOrCreateUser(r.Context(), req.Token)
		if err != nil {
			if errors.Is(err, user.ErrMissingToken) {
				WriteError(w, http.StatusBadRequest, "a token is required", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not resolve user", err)
			return
		}

		RespondJSON(w, http.StatusOK, usr)
	}
}

func GetUserHandler(svc port.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		usr, err := svc.GetUser(r.Context(), id)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "User not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not get user details", err)
			return
		}

		RespondJSON(w, http.StatusOK, usr)
	}
}
