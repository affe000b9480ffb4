package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/mock"
	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/usecase/user"
)

func TestFindOrCreateUserHandler(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		svc := &mock.MockUserService{User: &model.User{ID: primitive.NewObjectID(), Token: "tok-123"}}
		rec := httptest.NewRecorder()
		FindOrCreateUserHandler(svc)(rec, httptest.NewRequest("POST", "/users", strings.NewReader(`{"token":"tok-123"}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d (body %q)", rec.Code, rec.Body.String())
		}
		if svc.Token != "tok-123" {
			t.Errorf("token passed = %q", svc.Token)
		}
	})

	t.Run("missing token fails validation", func(t *testing.T) {
		svc := &mock.MockUserService{}
		rec := httptest.NewRecorder()
		FindOrCreateUserHandler(svc)(rec, httptest.NewRequest("POST", "/users", strings.NewReader(`{}`)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
		if svc.FindOrCreateCalled {
			t.Error("service must not be called without a token")
		}
	})
}

func TestGetUserHandler(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		svc := &mock.MockUserService{User: &model.User{ID: id, Name: "margot"}}
		rec := httptest.NewRecorder()
		GetUserHandler(svc)(rec, requestWithID("GET", "/users/"+id.Hex(), id))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "margot") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("missing", func(t *testing.T) {
		svc := &mock.MockUserService{Err: user.ErrNotFound}
		rec := httptest.NewRecorder()
		GetUserHandler(svc)(rec, requestWithID("GET", "/users/"+id.Hex(), id))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
		}
	})
}
