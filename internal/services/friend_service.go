package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adikhanov/bondify-backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrSelfRequest is returned when sender and receiver are the same identity.
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrMissingFields is returned when the sender email or receiver id is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrAlreadyRequested is returned when any prior request exists between the pair.
	ErrAlreadyRequested = errors.New("friend request already sent")
	// ErrRequestNotFound is returned when an accept/decline matched no record,
	// or the record already held the target status.
	ErrRequestNotFound = errors.New("friend request not found or already processed")
	// ErrNoAcceptedRequest is returned when an unfriend found no accepted request.
	ErrNoAcceptedRequest = errors.New("no accepted friend request found")
)

// FriendStore is the persistence surface the friend service depends on.
type FriendStore interface {
	GetRequestBetween(ctx context.Context, senderEmail string, receiverID primitive.ObjectID) (*models.FriendRequest, error)
	CreateRequest(ctx context.Context, req *models.FriendRequest) (*models.FriendRequest, error)
	GetRequestsByReceiver(ctx context.Context, email string, status models.RequestStatus) ([]models.FriendRequest, error)
	UpdateRequestStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) (int64, error)
	UpdateRequestStatusFrom(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) (int64, error)
}

// FriendService owns the friend-request lifecycle: creation, status
// transitions and the views derived from status.
//
// Transitions are targeted single-field updates addressed by record id.
// Accept and decline fire from any current status; unfriend is the only
// transition guarded on prior state.
type FriendService struct {
	store FriendStore
}

// NewFriendService creates a new FriendService.
func NewFriendService(store FriendStore) *FriendService {
	return &FriendService{store: store}
}

// SendFriendRequest creates a new pending request from sender to receiver.
// Any prior request between the pair, regardless of status, blocks a new one.
// Note: the existence check and the insert are not atomic; two concurrent
// identical sends can both pass the check.
func (s *FriendService) SendFriendRequest(ctx context.Context, senderEmail, senderName, senderPhoto string, receiverID primitive.ObjectID, receiverEmail string) (*models.FriendRequest, error) {
	if senderEmail == receiverEmail {
		return nil, ErrSelfRequest
	}
	if senderEmail == "" || receiverID.IsZero() {
		return nil, ErrMissingFields
	}

	existing, err := s.store.GetRequestBetween(ctx, senderEmail, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing request: %v", err)
	}
	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"sender":   senderEmail,
			"receiver": receiverID.Hex(),
			"status":   existing.Status,
		}).Warn("Duplicate friend request blocked")
		return nil, ErrAlreadyRequested
	}

	request := &models.FriendRequest{
		SenderEmail:   senderEmail,
		SenderName:    senderName,
		SenderPhoto:   senderPhoto,
		ReceiverID:    receiverID,
		ReceiverEmail: receiverEmail,
	}

	return s.store.CreateRequest(ctx, request)
}

// GetPendingRequests returns the incoming pending requests for an email.
func (s *FriendService) GetPendingRequests(ctx context.Context, email string) ([]models.FriendRequest, error) {
	requests, err := s.store.GetRequestsByReceiver(ctx, email, models.StatusPending)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.FriendRequest{}
	}
	return requests, nil
}

// GetFriends returns the accepted requests addressed to an email. The view
// is one-directional: only the receiver's perspective is queried.
func (s *FriendService) GetFriends(ctx context.Context, email string) ([]models.FriendRequest, error) {
	friends, err := s.store.GetRequestsByReceiver(ctx, email, models.StatusAccepted)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []models.FriendRequest{}
	}
	return friends, nil
}

// AcceptRequest sets a request's status to accepted, whatever its current
// status. Zero modified records means the id matched nothing or the request
// was already accepted.
func (s *FriendService) AcceptRequest(ctx context.Context, requestID primitive.ObjectID) error {
	modified, err := s.store.UpdateRequestStatus(ctx, requestID, models.StatusAccepted)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// DeclineRequest sets a request's status to declined, same shape as accept.
func (s *FriendService) DeclineRequest(ctx context.Context, requestID primitive.ObjectID) error {
	modified, err := s.store.UpdateRequestStatus(ctx, requestID, models.StatusDeclined)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Unfriend moves a request from accepted to unfriended. The transition only
// succeeds when the record currently holds status accepted.
func (s *FriendService) Unfriend(ctx context.Context, requestID primitive.ObjectID) error {
	modified, err := s.store.UpdateRequestStatusFrom(ctx, requestID, models.StatusAccepted, models.StatusUnfriended)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNoAcceptedRequest
	}
	return nil
}
