package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/api_context"
	"github.com/persnickety/venues-ms-go/internal/handler/api"
)

func WithObjectID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			parsedID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid ObjectID", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.IDKey, parsedID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
