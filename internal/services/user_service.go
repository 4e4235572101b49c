package services

import (
	"context"
	"errors"

	"github.com/adikhanov/bondify-backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMissingEmail is returned when a profile save carries no email key.
var ErrMissingEmail = errors.New("missing user email")

// UserStore is the persistence surface the user service depends on.
type UserStore interface {
	UpsertUser(ctx context.Context, user *models.User) (*mongo.UpdateResult, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// UserService encapsulates the business logic for the user directory.
type UserService struct {
	store UserStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// UpsertUser saves a profile, replacing any existing record with the same
// email. Returns the raw store mutation result, unshaped.
func (s *UserService) UpsertUser(ctx context.Context, user *models.User) (*mongo.UpdateResult, error) {
	if user.Email == "" {
		logrus.Warn("Profile save with no email")
		return nil, ErrMissingEmail
	}
	return s.store.UpsertUser(ctx, user)
}

// GetAllUsers returns every user record.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
