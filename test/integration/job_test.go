package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Xae97/TaskFundi/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListJobsIsPublic(t *testing.T) {
	ts := newServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var out struct {
		Jobs []models.JobPosting `json:"jobs"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &out))
	assert.Len(t, out.Jobs, 8)
	assert.Equal(t, "Kitchen Plumbing Repair", out.Jobs[0].Title)
}

func TestGetJobByID(t *testing.T) {
	ts := newServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/1", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Kitchen Plumbing Repair")

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_FOUND")
}

func TestCreateJobAsClient(t *testing.T) {
	ts := newServer(t)
	token := ts.Login(t, "client@test.com", "password123")

	body := map[string]interface{}{
		"title":       "Fence Repair",
		"description": "Replace three broken fence posts in the back yard.",
		"amount":      8000,
		"currency":    "KES",
		"address":     "Runda, Nairobi",
		"category":    "Carpentry",
		"skills":      []string{"Carpentry"},
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var job models.JobPosting
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "1", job.ClientID)
	assert.Equal(t, models.JobStatusOpen, job.Status)

	// The new posting shows up in the public list.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Fence Repair")
}

func TestCreateJobAsFundiForbidden(t *testing.T) {
	ts := newServer(t)
	token := ts.Login(t, "fundi@test.com", "password123")

	body := map[string]interface{}{
		"title":       "Not Allowed",
		"description": "Fundis cannot post job listings.",
		"amount":      1000,
		"currency":    "KES",
		"address":     "Nairobi",
		"category":    "Misc",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied")
}

func TestCreateJobRequiresAuth(t *testing.T) {
	ts := newServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", "", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestUpdateJobStatusOwnership(t *testing.T) {
	ts := newServer(t)
	owner := ts.Login(t, "client@test.com", "password123")
	other := ts.Login(t, "jane@test.com", "password123")

	// Job 1 belongs to the seeded test client.
	res, bodyStr := ts.SendRequest(t, http.MethodPatch, "/api/v1/jobs/1/status", owner, map[string]interface{}{
		"status": "assigned",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"assigned"`)

	res, bodyStr = ts.SendRequest(t, http.MethodPatch, "/api/v1/jobs/1/status", other, map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "FORBIDDEN")

	// Unknown labels are rejected by validation.
	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/jobs/1/status", owner, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateAndDeleteJob(t *testing.T) {
	ts := newServer(t)
	token := ts.Login(t, "client@test.com", "password123")

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/1", token, map[string]interface{}{
		"title": "Kitchen Plumbing Repair (urgent)",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "urgent")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/1", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/1", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListMyJobs(t *testing.T) {
	ts := newServer(t)
	token := ts.Login(t, "client@test.com", "password123")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/mine", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var out struct {
		Jobs []models.JobPosting `json:"jobs"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &out))
	assert.Len(t, out.Jobs, 3)
	for _, job := range out.Jobs {
		assert.Equal(t, "1", job.ClientID)
	}
}
