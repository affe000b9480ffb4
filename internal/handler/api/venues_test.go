package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/mock"
	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/usecase/venue"
)

func TestCreateVenueHandler(t *testing.T) {
	creator := primitive.NewObjectID()

	t.Run("happy path", func(t *testing.T) {
		svc := &mock.MockVenueService{Venue: &model.Venue{ID: primitive.NewObjectID(), Title: "Le Perchoir"}}
		rec := httptest.NewRecorder()
		body := `{"title":"Le Perchoir","address":"14 Rue Crespin du Gast","latitude":48.866,"longitude":2.382,"creator":"` + creator.Hex() + `"}`
		CreateVenueHandler(svc)(rec, httptest.NewRequest("POST", "/venues", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d (body %q)", rec.Code, rec.Body.String())
		}
		if svc.CreateIn.Title != "Le Perchoir" || svc.CreateIn.Creator != creator {
			t.Errorf("input not carried over: %+v", svc.CreateIn)
		}
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		svc := &mock.MockVenueService{}
		rec := httptest.NewRecorder()
		body := `{"creator":"` + creator.Hex() + `"}`
		CreateVenueHandler(svc)(rec, httptest.NewRequest("POST", "/venues", strings.NewReader(body)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "title") {
			t.Errorf("validation errors should name the field, got %q", rec.Body.String())
		}
		if svc.CreateCalled {
			t.Error("service must not be called on validation failure")
		}
	})

	t.Run("invalid creator ID", func(t *testing.T) {
		svc := &mock.MockVenueService{}
		rec := httptest.NewRecorder()
		body := `{"title":"x","creator":"nope"}`
		CreateVenueHandler(svc)(rec, httptest.NewRequest("POST", "/venues", strings.NewReader(body)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestGetVenueHandler(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		svc := &mock.MockVenueService{Venue: &model.Venue{ID: id, Title: "Le Perchoir"}}
		rec := httptest.NewRecorder()
		GetVenueHandler(svc)(rec, requestWithID("GET", "/venues/"+id.Hex(), id))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Le Perchoir") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("missing", func(t *testing.T) {
		svc := &mock.MockVenueService{Err: venue.ErrNotFound}
		rec := httptest.NewRecorder()
		GetVenueHandler(svc)(rec, requestWithID("GET", "/venues/"+id.Hex(), id))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestListVenuesHandler(t *testing.T) {
	svc := &mock.MockVenueService{Listing: []model.Venue{{ID: primitive.NewObjectID()}}}
	rec := httptest.NewRecorder()
	ListVenuesHandler(svc)(rec, httptest.NewRequest("GET", "/venues", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !svc.ListCalled {
		t.Error("service should be called")
	}
}

func TestDeleteVenueHandler(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("happy path", func(t *testing.T) {
		svc := &mock.MockVenueService{}
		rec := httptest.NewRecorder()
		DeleteVenueHandler(svc)(rec, requestWithID("DELETE", "/venues/"+id.Hex(), id))

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNoContent)
		}
		if !svc.DeleteCalled || svc.ID != id {
			t.Error("service should delete the venue")
		}
	})

	t.Run("service error", func(t *testing.T) {
		svc := &mock.MockVenueService{Err: errors.New("boom")}
		rec := httptest.NewRecorder()
		DeleteVenueHandler(svc)(rec, requestWithID("DELETE", "/venues/"+id.Hex(), id))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}
