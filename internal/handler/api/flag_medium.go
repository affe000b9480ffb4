package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/persnickety/venues-ms-go/internal/api_context"
	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/media"
)

type FlagRequest struct {
	Flags        map[string]any `json:"flags"`
	ShouldDelete *bool          `json:"shouldDelete"`
}

// shouldDelete defaults to true; only an explicit false flags instead
func (req FlagRequest) shouldDelete() bool {
	return req.ShouldDelete == nil || *req.ShouldDelete
}

// FlagMediumHandler flags a medium for moderation, or deletes it outright
// unless shouldDelete is explicitly false.
func FlagMediumHandler(svc port.MediumModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req FlagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		in := port.FlagMediumInput{
			ID:           id,
			Flags:        req.Flags,
			ShouldDelete: req.shouldDelete(),
		}
		medium, err := svc.FlagOrDeleteMedium(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, media.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "could not moderate medium", err)
			}
			return
		}

		if in.ShouldDelete {
			w.WriteHeader(http.StatusOK)
			log.Printf("✅  Successfully deleted medium #%s", id.Hex())
			return
		}

		RespondJSON(w, http.StatusOK, medium)
		log.Printf("✅  Successfully flagged medium #%s", id.Hex())
	}
}
