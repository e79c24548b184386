package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	ts := newServer(t)

	registerBody := map[string]interface{}{
		"name":     "Mary Mason",
		"email":    "mary@test.com",
		"password": "super_password123",
		"address":  "Ngong Road, Nairobi",
		"role":     "fundi",
		"skills":   "Masonry, Tiling",
	}

	regRes, regBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "access_token")
	assert.Contains(t, regBodyStr, "mary@test.com")
	assert.NotContains(t, regBodyStr, "super_password123")

	token := ts.Login(t, "mary@test.com", "super_password123")

	meRes, meBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, "Mary Mason")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newServer(t)

	body := map[string]interface{}{
		"name":     "Copy Cat",
		"email":    "client@test.com",
		"password": "password123",
		"address":  "Nairobi",
		"role":     "client",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "ALREADY_EXISTS")
}

func TestRegisterValidation(t *testing.T) {
	ts := newServer(t)

	// Missing required fields.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email": "nobody@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "VALIDATION_FAILED")

	// Unknown role.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Strange Role",
		"email":    "strange@test.com",
		"password": "password123",
		"address":  "Nairobi",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "VALIDATION_FAILED")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "client@test.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "INVALID_CREDENTIALS")
}

func TestRefreshTokenRotation(t *testing.T) {
	ts := newServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "client@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var refreshed struct {
		RefreshToken string `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &refreshed))
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was consumed.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	ts := newServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "client@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestForgotPasswordNeverRevealsAccounts(t *testing.T) {
	ts := newServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "client@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res2, bodyStr2 := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "ghost@test.com",
	})
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Equal(t, bodyStr, bodyStr2)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := newServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
