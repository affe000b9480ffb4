package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/media"
)

// uploads larger than this are rejected by the multipart parser
const maxUploadBytes = 32 << 20

// UploadMediumHandler ingests a multipart upload: `file` plus `creator`,
// `venue` and optional `atVenue` form fields. On success the response body is
// the plain-text URL of the stored original.
func UploadMediumHandler(svc port.MediumIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "No data received, a file is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		creator, err := primitive.ObjectIDFromHex(r.FormValue("creator"))
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid creator ID", err)
			return
		}
		venue, err := primitive.ObjectIDFromHex(r.FormValue("venue"))
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid venue ID", err)
			return
		}
		// absent or unparsable means false
		atVenue, _ := strconv.ParseBool(r.FormValue("atVenue"))

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not read uploaded file", err)
			return
		}

		in := port.IngestMediumInput{
			File:     data,
			MimeType: header.Header.Get("Content-Type"),
			Creator:  creator,
			Venue:    venue,
			AtVenue:  atVenue,
		}
		medium, err := svc.IngestMedium(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, media.ErrVenueNotFound):
				WriteError(w, http.StatusNotFound, "Venue not found!", nil)
			case errors.Is(err, media.ErrUnsupportedType):
				WriteError(w, http.StatusInternalServerError, "unsupported file type", err)
			default:
				WriteError(w, http.StatusInternalServerError, "could not ingest medium", err)
			}
			return
		}

		RespondText(w, http.StatusOK, medium.Path)
		log.Printf("✅  Successfully ingested medium #%s for venue #%s", medium.ID.Hex(), venue.Hex())
	}
}
