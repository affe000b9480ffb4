package api_context

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func IDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(IDKey).(primitive.ObjectID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
