package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adikhanov/bondify-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FriendRepository handles database operations on friend request records.
type FriendRepository struct {
	collection *mongo.Collection
}

// NewFriendRepository creates a new FriendRepository.
func NewFriendRepository(db *mongo.Database) *FriendRepository {
	return &FriendRepository{
		collection: db.Collection("friend_requests"),
	}
}

// GetRequestBetween looks up any prior request for the (sender email,
// receiver id) pair, regardless of status. Returns nil when none exists.
func (r *FriendRepository) GetRequestBetween(ctx context.Context, senderEmail string, receiverID primitive.ObjectID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.collection.FindOne(ctx, bson.M{
		"sender_email": senderEmail,
		"receiver_id":  receiverID,
	}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up friend request: %v", err)
	}
	return &request, nil
}

// CreateRequest inserts a new friend request with status pending.
func (r *FriendRepository) CreateRequest(ctx context.Context, req *models.FriendRequest) (*models.FriendRequest, error) {
	req.Status = models.StatusPending
	req.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create friend request: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	req.ID = insertedID

	return req, nil
}

// GetRequestsByReceiver returns all requests addressed to the given email
// with the given status, in store order.
func (r *FriendRepository) GetRequestsByReceiver(ctx context.Context, email string, status models.RequestStatus) ([]models.FriendRequest, error) {
	filter := bson.M{"receiver_email": email, "status": status}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find friend requests: %v", err)
	}
	defer cursor.Close(ctx)

	var requests []models.FriendRequest
	for cursor.Next(ctx) {
		var req models.FriendRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// UpdateRequestStatus sets the status of the request with the given id and
// reports how many records were modified. Mongo reports zero both when the
// id matched nothing and when the status already held the target value.
func (r *FriendRepository) UpdateRequestStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update request status: %v", err)
	}
	return result.ModifiedCount, nil
}

// UpdateRequestStatusFrom sets the status only when the record currently
// holds the expected status. Used by unfriend, the one guarded transition.
func (r *FriendRepository) UpdateRequestStatusFrom(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) (int64, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update request status: %v", err)
	}
	return result.ModifiedCount, nil
}
