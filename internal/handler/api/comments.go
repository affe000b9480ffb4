package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/api_context"
	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/comment"
	"github.com/persnickety/venues-ms-go/internal/validation"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
	Creator string `json:"creator" validate:"required"`
	Venue   string `json:"venue" validate:"required"`
	AtVenue bool   `json:"atVenue"`
	Color   string `json:"color"`
	Icon    string `json:"icon"`
}

func CreateCommentHandler(svc port.CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCommentRequest
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

		creator, err := primitive.ObjectIDFromHex(req.Creator)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid creator ID", err)
			return
		}
		venueID, err := primitive.ObjectIDFromHex(req.Venue)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid venue ID", err)
			return
		}

		in := port.CreateCommentInput{
			Content: req.Content,
			Creator: creator,
			Venue:   venueID,
			AtVenue: req.AtVenue,
			Color:   req.Color,
			Icon:    req.Icon,
		}
		created, err := svc.CreateComment(r.Context(), in)
		if err != nil {
			if errors.Is(err, comment.ErrVenueNotFound) {
				WriteError(w, http.StatusNotFound, "Venue not found!", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not create comment", err)
			return
		}

		RespondJSON(w, http.StatusCreated, created)
		log.Printf("✅  Successfully created comment #%s for venue #%s", created.ID.Hex(), venueID.Hex())
	}
}

// ListCommentsHandler serves all comments, or one venue's comments when the
// `venue` query param is set.
func ListCommentsHandler(svc port.CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var venueID *primitive.ObjectID
		if raw := r.URL.Query().Get("venue"); raw != "" {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "invalid venue ID", err)
				return
			}
			venueID = &id
		}

		comments, err := svc.ListComments(r.Context(), venueID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not list comments", err)
			return
		}

		RespondJSON(w, http.StatusOK, comments)
	}
}

func GetCommentHandler(svc port.CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		found, err := svc.GetComment(r.Context(), id)
		if err != nil {
			if errors.Is(err, comment.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Comment not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not get comment details", err)
			return
		}

		RespondJSON(w, http.StatusOK, found)
	}
}

// FlagCommentHandler mirrors medium moderation for comments.
func FlagCommentHandler(svc port.CommentService) http.HandlerFunc {
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

		in := port.FlagCommentInput{
			ID:           id,
			Flags:        req.Flags,
			ShouldDelete: req.shouldDelete(),
		}
		flagged, err := svc.FlagOrDeleteComment(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, comment.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Comment not found", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "could not moderate comment", err)
			}
			return
		}

		if in.ShouldDelete {
			w.WriteHeader(http.StatusOK)
			log.Printf("✅  Successfully deleted comment #%s", id.Hex())
			return
		}

		RespondJSON(w, http.StatusOK, flagged)
		log.Printf("✅  Successfully flagged comment #%s", id.Hex())
	}
}
