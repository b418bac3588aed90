// test/e2e/e2e_test.go
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-api/internal/common/config"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/internal/registry"
	"activities-api/internal/server"
	"activities-api/pkg/catalog"
)

type activityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// ==========================
// Test Server Setup
// ==========================

func startServer(t *testing.T) *httptest.Server {
	staticDir := t.TempDir()
	err := os.WriteFile(filepath.Join(staticDir, "index.html"),
		[]byte("<html><body>Mergington High School Activities</body></html>"), 0644)
	require.NoError(t, err)

	cfg := config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            8080,
		ReadTimeout:     10000,
		WriteTimeout:    10000,
		IdleTimeout:     60000,
		ShutdownTimeout: 30000,
		StaticDir:       staticDir,
	}

	reg, err := registry.New(catalog.Default())
	require.NoError(t, err)

	log := logger.NewZapAdapter(logger.New("error", "console"))
	srv := server.New(cfg, reg, observability.New("activities-e2e"), log)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// noRedirectClient returns a client that surfaces redirects instead of
// following them. The server's shared client is left untouched.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func getActivities(t *testing.T, ts *httptest.Server) map[string]activityDetail {
	resp, err := ts.Client().Get(ts.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]activityDetail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	return activities
}

func postRoster(t *testing.T, ts *httptest.Server, action, name, email string) (int, []byte) {
	target := fmt.Sprintf("%s/activities/%s/%s", ts.URL, url.PathEscape(name), action)
	if email != "" {
		target += "?email=" + url.QueryEscape(email)
	}

	resp, err := ts.Client().Post(target, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func decodeMessage(t *testing.T, body []byte) string {
	var out messageResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Message
}

func decodeDetail(t *testing.T, body []byte) string {
	var out errorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Detail
}

// ==========================
// Full HTTP Flow
// ==========================

func TestFullE2E(t *testing.T) {
	ts := startServer(t)

	t.Log("🚀 Starting full HTTP flow against in-process server...")

	testRootRedirect(t, ts)
	testActivityList(t, ts)
	testSignupFlow(t, ts)
	testErrorResponses(t, ts)
	testUnregisterFlow(t, ts)
	testOperationalEndpoints(t, ts)

	t.Log("✅ Full HTTP flow passed")
}

func testRootRedirect(t *testing.T, ts *httptest.Server) {
	t.Log("🔍 Checking root redirect...")

	resp, err := noRedirectClient().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Contains(t, []int{
		http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect,
	}, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/static/index.html")

	// Following the redirect lands on the frontend page.
	followed, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer followed.Body.Close()
	assert.Equal(t, http.StatusOK, followed.StatusCode)

	t.Log("✅ Root redirect works")
}

func testActivityList(t *testing.T, ts *httptest.Server) {
	t.Log("🔍 Checking activity list...")

	activities := getActivities(t, ts)
	require.Len(t, activities, 9)

	for name, detail := range activities {
		assert.NotEmpty(t, detail.Description, "%s missing description", name)
		assert.NotEmpty(t, detail.Schedule, "%s missing schedule", name)
		assert.Greater(t, detail.MaxParticipants, 0, "%s missing max_participants", name)
		assert.NotEmpty(t, detail.Participants, "%s should have seeded participants", name)
	}

	require.Contains(t, activities, "Basketball")
	assert.Contains(t, activities["Basketball"].Participants, "alex@mergington.edu")

	t.Log("✅ Activity list is complete")
}

func testSignupFlow(t *testing.T, ts *httptest.Server) {
	t.Log("🔍 Checking signup flow...")

	email := "e2e-student@mergington.edu"

	status, body := postRoster(t, ts, "signup", "Drama Club", email)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fmt.Sprintf("Signed up %s for Drama Club", email), decodeMessage(t, body))

	activities := getActivities(t, ts)
	participants := activities["Drama Club"].Participants
	require.NotEmpty(t, participants)
	assert.Equal(t, email, participants[len(participants)-1], "new signup should append to the end")

	// Signing up twice for the same activity is rejected.
	status, body = postRoster(t, ts, "signup", "Drama Club", email)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decodeDetail(t, body), "already signed up")

	t.Log("✅ Signup flow works")
}

func testErrorResponses(t *testing.T, ts *httptest.Server) {
	t.Log("🔍 Checking error responses...")

	// Unknown activity.
	status, body := postRoster(t, ts, "signup", "Underwater Basket Weaving", "someone@mergington.edu")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Activity not found", decodeDetail(t, body))

	status, body = postRoster(t, ts, "unregister", "Underwater Basket Weaving", "someone@mergington.edu")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Activity not found", decodeDetail(t, body))

	// Missing email parameter.
	status, body = postRoster(t, ts, "signup", "Basketball", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "email is required", decodeDetail(t, body))

	t.Log("✅ Error responses are correct")
}

func testUnregisterFlow(t *testing.T, ts *httptest.Server) {
	t.Log("🔍 Checking unregister flow...")

	email := "e2e-student@mergington.edu"

	status, body := postRoster(t, ts, "unregister", "Drama Club", email)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fmt.Sprintf("Unregistered %s from Drama Club", email), decodeMessage(t, body))

	activities := getActivities(t, ts)
	assert.NotContains(t, activities["Drama Club"].Participants, email)

	// Unregistering someone who is not on the roster is rejected.
	status, body = postRoster(t, ts, "unregister", "Drama Club", email)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decodeDetail(t, body), "not signed up")

	// The student can sign up again after leaving.
	status, _ = postRoster(t, ts, "signup", "Drama Club", email)
	assert.Equal(t, http.StatusOK, status)

	t.Log("✅ Unregister flow works")
}

func testOperationalEndpoints(t *testing.T, ts *httptest.Server) {
	t.Log("🔍 Checking operational endpoints...")

	// Health
	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", health["status"])

	// Ready
	resp, err = ts.Client().Get(ts.URL + "/ready")
	require.NoError(t, err)
	var ready struct {
		Status     string `json:"status"`
		Activities int    `json:"activities"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ready))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, 9, ready.Activities)

	// Metrics
	resp, err = ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	scrape := make([]byte, 4096)
	n, _ := resp.Body.Read(scrape)
	assert.Contains(t, string(scrape[:n]), "# HELP")

	t.Log("✅ Operational endpoints respond")
}
