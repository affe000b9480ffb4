package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/persnickety/venues-ms-go/internal/api_context"
	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/media"
)

// GetMediumHandler serves one medium with its creator and venue expanded.
// A missing medium answers 200 with a literal null body.
func GetMediumHandler(svc port.MediumGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.GetMedium(r.Context(), id)
		if err != nil {
			if errors.Is(err, media.ErrNotFound) {
				RespondRawJSON(w, http.StatusOK, []byte("null"))
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not get medium details", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully returned details for medium #%s", id.Hex())
	}
}
