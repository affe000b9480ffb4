package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/mock"
	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/usecase/media"
)

func TestListVenueMediaHandler(t *testing.T) {
	venueID := primitive.NewObjectID()

	t.Run("happy path", func(t *testing.T) {
		svc := &mock.MockMediumLister{Out: []model.Medium{
			{ID: primitive.NewObjectID(), Path: "http://storage.test/medias/a.jpg"},
		}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/media?venue="+venueID.Hex(), nil)
		ListVenueMediaHandler(svc)(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if svc.Venue != venueID {
			t.Errorf("venue passed = %s; want %s", svc.Venue.Hex(), venueID.Hex())
		}
		var listing []model.Medium
		if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(listing) != 1 {
			t.Errorf("expected 1 medium, got %d", len(listing))
		}
	})

	t.Run("missing venue param", func(t *testing.T) {
		svc := &mock.MockMediumLister{}
		rec := httptest.NewRecorder()
		ListVenueMediaHandler(svc)(rec, httptest.NewRequest("GET", "/media", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
		if svc.Called {
			t.Error("service must not be called without a venue")
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc := &mock.MockMediumLister{Err: media.ErrVenueNotFound}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/media?venue="+venueID.Hex(), nil)
		ListVenueMediaHandler(svc)(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("service error", func(t *testing.T) {
		svc := &mock.MockMediumLister{Err: errors.New("boom")}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/media?venue="+venueID.Hex(), nil)
		ListVenueMediaHandler(svc)(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}
