package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

var (
	// ErrNotFound means no user exists under the given ID.
	ErrNotFound = errors.New("user not found")
	// ErrMissingToken means an empty token was supplied.
	ErrMissingToken = errors.New("missing token")
	// ErrPersistence wraps database failures.
	ErrPersistence = errors.New("persistence failure")
)

type userSrv struct {
	users port.UserRepository
}

// compile-time check: *userSrv must satisfy port.UserService
var _ port.UserService = (*userSrv)(nil)

// NewUserService constructs a UserService implementation.
func NewUserService(users port.UserRepository) port.UserService {
	return &userSrv{users: users}
}

// FindOrCreateUser resolves a token to its user, creating the user on first
// sight. The upsert is atomic on the unique token index so concurrent calls
// with one token converge on a single record.
func (s *userSrv) FindOrCreateUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	usr, err := s.users.FindOrCreateByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return usr, nil
}

func (s *userSrv) GetUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	usr, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return usr, nil
}
