package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestStatus is the lifecycle state of a friend request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusAccepted   RequestStatus = "accepted"
	StatusDeclined   RequestStatus = "declined"
	StatusUnfriended RequestStatus = "unfriended"
)

// FriendRequest is the single stateful entity of the system: one directional
// relationship proposal between a sender (identified by email) and a receiver
// (identified by user id). Transitions mutate the status field in place; a
// request is never deleted.
type FriendRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderEmail   string             `bson:"sender_email" json:"sender_email"`
	SenderName    string             `bson:"sender_name,omitempty" json:"sender_name,omitempty"`
	SenderPhoto   string             `bson:"sender_photo,omitempty" json:"sender_photo,omitempty"`
	ReceiverID    primitive.ObjectID `bson:"receiver_id" json:"receiver_id"`
	ReceiverEmail string             `bson:"receiver_email" json:"receiver_email"`
	Status        RequestStatus      `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
