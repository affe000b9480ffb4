package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/api_context"
	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/usecase/venue"
	"github.com/persnickety/venues-ms-go/internal/validation"
)

type CreateVenueRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Creator     string  `json:"creator" validate:"required"`
}

func CreateVenueHandler(svc port.VenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVenueRequest
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

		in := port.CreateVenueInput{
			Title:       req.Title,
			Description: req.Description,
			Address:     req.Address,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			Creator:     creator,
		}
		created, err := svc.CreateVenue(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not create venue", err)
			return
		}

		RespondJSON(w, http.StatusCreated, created)
		log.Printf("✅  Successfully created venue #%s", created.ID.Hex())
	}
}

func ListVenuesHandler(svc port.VenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := svc.ListVenues(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not list venues", err)
			return
		}
		RespondJSON(w, http.StatusOK, venues)
	}
}

func GetVenueHandler(svc port.VenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		found, err := svc.GetVenue(r.Context(), id)
		if err != nil {
			if errors.Is(err, venue.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Venue not found!", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not get venue details", err)
			return
		}

		RespondJSON(w, http.StatusOK, found)
	}
}

func DeleteVenueHandler(svc port.VenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteVenue(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not delete venue", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted venue #%s", id.Hex())
	}
}
