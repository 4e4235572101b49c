package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adikhanov/bondify-backend/internal/services"
	"github.com/adikhanov/bondify-backend/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendHandler manages HTTP endpoints for the friend-request lifecycle.
type FriendHandler struct {
	Service *services.FriendService
}

// NewFriendHandler initializes a new FriendHandler.
func NewFriendHandler(service *services.FriendService) *FriendHandler {
	return &FriendHandler{Service: service}
}

// SendFriendRequestHandler creates a new pending friend request.
func (h *FriendHandler) SendFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentUserEmail string `json:"currentUserEmail"`
		FriendID         string `json:"friendId"`
		FriendEmail      string `json:"friendEmail"`
		Name             string `json:"Name"`
		Photo            string `json:"Photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode friend request payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if body.CurrentUserEmail == "" || body.FriendID == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	receiverID, err := primitive.ObjectIDFromHex(body.FriendID)
	if err != nil {
		logger.Log.WithError(err).Warn("Invalid receiver ID")
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	request, err := h.Service.SendFriendRequest(r.Context(), body.CurrentUserEmail, body.Name, body.Photo, receiverID, body.FriendEmail)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfRequest):
			respondError(w, http.StatusBadRequest, "Invalid Request")
		case errors.Is(err, services.ErrMissingFields):
			respondError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, services.ErrAlreadyRequested):
			respondError(w, http.StatusBadRequest, "Friend request already sent")
		default:
			logger.Log.WithError(err).Error("Failed to send friend request")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"sender":   body.CurrentUserEmail,
		"receiver": body.FriendID,
	}).Info("Friend request sent")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  request,
	})
}

// GetPendingRequestsHandler shows all incoming pending requests for an email.
func (h *FriendHandler) GetPendingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	requests, err := h.Service.GetPendingRequests(r.Context(), email)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch pending requests")
		respondError(w, http.StatusInternalServerError, "Error fetching friend requests")
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

// GetFriendsHandler returns all accepted requests addressed to an email.
func (h *FriendHandler) GetFriendsHandler(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	friends, err := h.Service.GetFriends(r.Context(), email)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch friends")
		respondError(w, http.StatusInternalServerError, "Error fetching friends")
		return
	}

	respondJSON(w, http.StatusOK, friends)
}

// AcceptFriendRequestHandler moves a request to status accepted.
func (h *FriendHandler) AcceptFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.decodeRequestID(w, r)
	if !ok {
		return
	}

	if err := h.Service.AcceptRequest(r.Context(), requestID); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			respondError(w, http.StatusBadRequest, "Friend request not found or already accepted")
			return
		}
		logger.Log.WithError(err).Error("Failed to accept friend request")
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.Log.WithField("requestID", requestID.Hex()).Info("Friend request accepted")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Friend request accepted",
	})
}

// DeclineFriendRequestHandler moves a request to status declined.
func (h *FriendHandler) DeclineFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.decodeRequestID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeclineRequest(r.Context(), requestID); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			respondError(w, http.StatusBadRequest, "Friend request not found or already processed")
			return
		}
		logger.Log.WithError(err).Error("Failed to decline friend request")
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.Log.WithField("requestID", requestID.Hex()).Info("Friend request declined")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Friend request declined",
	})
}

// UnfriendHandler moves an accepted request to status unfriended. A missing
// id or a record in any other status both surface as not found.
func (h *FriendHandler) UnfriendHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode unfriend payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	requestID, err := primitive.ObjectIDFromHex(body.RequestID)
	if err != nil {
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "No accepted friend request found",
		})
		return
	}

	if err := h.Service.Unfriend(r.Context(), requestID); err != nil {
		if errors.Is(err, services.ErrNoAcceptedRequest) {
			respondJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"message": "No accepted friend request found",
			})
			return
		}
		logger.Log.WithError(err).Error("Failed to unfriend")
		respondError(w, http.StatusInternalServerError, "Error unfriending")
		return
	}

	logger.Log.WithField("requestID", requestID.Hex()).Info("Unfriended")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Unfriended successfully",
	})
}

func (h *FriendHandler) decodeRequestID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	var body struct {
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode request payload")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return primitive.NilObjectID, false
	}
	defer r.Body.Close()

	if body.RequestID == "" {
		respondError(w, http.StatusBadRequest, "Missing request ID")
		return primitive.NilObjectID, false
	}

	requestID, err := primitive.ObjectIDFromHex(body.RequestID)
	if err != nil {
		logger.Log.WithError(err).Warn("Invalid friend request ID")
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return primitive.NilObjectID, false
	}

	return requestID, true
}
