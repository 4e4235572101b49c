package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenHandler(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/jwt", map[string]string{
		"email": "alice@example.com",
		"name":  "Alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp["token"])
}

func TestMeHandlerRequiresToken(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeHandlerReturnsClaims(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/jwt", map[string]string{
		"email": "alice@example.com",
		"name":  "Alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var issued map[string]string
	decodeBody(t, rec, &issued)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issued["token"])
	me := httptest.NewRecorder()
	router.ServeHTTP(me, req)

	require.Equal(t, http.StatusOK, me.Code)
	var claims map[string]interface{}
	decodeBody(t, me, &claims)
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Negative(t, cookies[0].MaxAge)

	var resp map[string]bool
	decodeBody(t, rec, &resp)
	assert.True(t, resp["success"])
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bondify is running", rec.Body.String())
}
