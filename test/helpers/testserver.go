package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Xae97/TaskFundi/internal/app"
	"github.com/Xae97/TaskFundi/internal/auth"
	"github.com/Xae97/TaskFundi/internal/config"
	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type TestServer struct {
	Server *httptest.Server
}

// NewTestServer boots the full application over the default seed dataset
// and serves it from httptest. Every call gets fresh in-memory stores.
func NewTestServer(t *testing.T) *TestServer {
	os.Setenv("JWT_SECRET", "integration-test-secret")
	gin.SetMode(gin.TestMode)

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	router := app.SetupRouter(cfg, store.DefaultSeed())
	server := httptest.NewServer(router)

	return &TestServer{Server: server}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// SendRequest issues one JSON request against the test server. The token,
// when non-empty, goes out as a Bearer header.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return res, string(resBodyBytes)
}

// Login authenticates one of the seeded demo accounts and returns the
// access token.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(body), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken
}
