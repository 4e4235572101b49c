package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adikhanov/bondify-backend/internal/config"
	"github.com/adikhanov/bondify-backend/internal/models"
	"github.com/adikhanov/bondify-backend/internal/services"
	"github.com/adikhanov/bondify-backend/pkg/logger"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	logger.InitLogger()
	m.Run()
}

// In-memory stores standing in for the Mongo collections.

type memFriendStore struct {
	requests map[primitive.ObjectID]*models.FriendRequest
}

func newMemFriendStore() *memFriendStore {
	return &memFriendStore{requests: make(map[primitive.ObjectID]*models.FriendRequest)}
}

func (f *memFriendStore) GetRequestBetween(_ context.Context, senderEmail string, receiverID primitive.ObjectID) (*models.FriendRequest, error) {
	for _, req := range f.requests {
		if req.SenderEmail == senderEmail && req.ReceiverID == receiverID {
			return req, nil
		}
	}
	return nil, nil
}

func (f *memFriendStore) CreateRequest(_ context.Context, req *models.FriendRequest) (*models.FriendRequest, error) {
	req.ID = primitive.NewObjectID()
	req.Status = models.StatusPending
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *memFriendStore) GetRequestsByReceiver(_ context.Context, email string, status models.RequestStatus) ([]models.FriendRequest, error) {
	var out []models.FriendRequest
	for _, req := range f.requests {
		if req.ReceiverEmail == email && req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *memFriendStore) UpdateRequestStatus(_ context.Context, id primitive.ObjectID, status models.RequestStatus) (int64, error) {
	req, ok := f.requests[id]
	if !ok || req.Status == status {
		return 0, nil
	}
	req.Status = status
	return 1, nil
}

func (f *memFriendStore) UpdateRequestStatusFrom(_ context.Context, id primitive.ObjectID, from, to models.RequestStatus) (int64, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != from {
		return 0, nil
	}
	req.Status = to
	return 1, nil
}

type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (f *memUserStore) UpsertUser(_ context.Context, user *models.User) (*mongo.UpdateResult, error) {
	user.Timestamp = time.Now()

	if existing, ok := f.users[user.Email]; ok {
		user.ID = existing.ID
		f.users[user.Email] = user
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: user.ID}, nil
}

func (f *memUserStore) GetAllUsers(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func newTestRouter() *mux.Router {
	cfg := &config.Config{
		Port:        "5000",
		JWTSecret:   testSecret,
		TokenExpiry: 365 * 24 * time.Hour,
		Env:         "development",
	}

	userService := services.NewUserService(newMemUserStore())
	friendService := services.NewFriendService(newMemFriendStore())

	return NewRouter(cfg, NewAuthHandler(cfg), NewUserHandler(userService), NewFriendHandler(friendService))
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
