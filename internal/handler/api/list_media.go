package api

import (
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/media"
)

// ListVenueMediaHandler serves a venue's media listing. The `venue` query
// param is mandatory and must name an existing venue.
func ListVenueMediaHandler(svc port.MediumLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("venue"))
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a valid venue ID is required", err)
			return
		}

		listing, err := svc.ListVenueMedia(r.Context(), venueID)
		if err != nil {
			if errors.Is(err, media.ErrVenueNotFound) {
				WriteError(w, http.StatusNotFound, "Venue not found!", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not list venue media", err)
			return
		}

		RespondJSON(w, http.StatusOK, listing)
		log.Printf("✅  Successfully listed %d media for venue #%s", len(listing), venueID.Hex())
	}
}
