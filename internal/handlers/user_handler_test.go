package handlers

import (
	"net/http"
	"testing"

	"github.com/adikhanov/bondify-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserThenList(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/user", map[string]string{
		"email": "alice@example.com",
		"name":  "Alice",
		"photo": "alice.png",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Second save with the same email replaces the profile fields.
	rec = doJSON(t, router, http.MethodPut, "/user", map[string]string{
		"email": "alice@example.com",
		"name":  "Alice Cooper",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	decodeBody(t, rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "Alice Cooper", users[0].Name)
	assert.False(t, users[0].Timestamp.IsZero())
}

func TestUpsertUserMissingEmailRejected(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/user", map[string]string{
		"name": "No Email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUsersEmpty(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	decodeBody(t, rec, &users)
	assert.Empty(t, users)
}
