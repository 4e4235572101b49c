package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adikhanov/bondify-backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository handles database operations related to users.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// UpsertUser replaces-or-inserts the profile matching the user's email,
// stamping a server-side write timestamp. Last write wins; there is no
// conflict detection.
func (r *UserRepository) UpsertUser(ctx context.Context, user *models.User) (*mongo.UpdateResult, error) {
	user.Timestamp = time.Now()

	filter := bson.M{"email": user.Email}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": user.Email,
			"error": err,
		}).Error("Failed to upsert user")
		return nil, fmt.Errorf("failed to upsert user: %v", err)
	}

	logrus.WithField("email", user.Email).Info("User upserted successfully")
	return result, nil
}

// GetAllUsers returns every user record, unfiltered and unpaginated.
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %v", err)
		}
		users = append(users, user)
	}

	return users, nil
}
