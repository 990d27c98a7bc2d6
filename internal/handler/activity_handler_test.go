package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ecorun/activity-backend-go/internal/database"
	"github.com/ecorun/activity-backend-go/internal/middleware"
	"github.com/ecorun/activity-backend-go/internal/models"
	"github.com/ecorun/activity-backend-go/internal/repository"
	"github.com/ecorun/activity-backend-go/internal/service"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	h := NewActivityHandler(service.NewActivityService(repository.NewActivityRepository(db)))

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth(testSecret))
	{
		activities := api.Group("/activities")
		activities.POST("", h.Create)
		activities.GET("", h.List)
		activities.GET("/summary", h.Summary)
		activities.GET("/:id", h.Get)
		activities.GET("/:id/track", h.Track)
		activities.GET("/:id/gpx", h.ExportGPX)
		activities.DELETE("/:id", h.Delete)
	}
	return r
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{UserID: userID}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createRequestBody() models.CreateActivityRequest {
	speed := 10.0
	return models.CreateActivityRequest{
		Kind: models.ActivityRunning,
		Name: "Morning Run",
		Positions: []models.RawPosition{
			{Latitude: 48.8566, Longitude: 2.3522, Timestamp: 1700000000000, Speed: &speed},
			{Latitude: 48.8576, Longitude: 2.3532, Timestamp: 1700000060000},
		},
	}
}

func TestRequiresAuthentication(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/activities", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/activities", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndGetActivity(t *testing.T) {
	r := newTestRouter(t)
	auth := bearerToken(t, "u1")

	w := doRequest(r, http.MethodPost, "/api/v1/activities", auth, createRequestBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data models.Activity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.ID)
	assert.EqualValues(t, 60, created.Data.DurationSeconds)

	w = doRequest(r, http.MethodGet, "/api/v1/activities/"+created.Data.ID, auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data models.Activity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Data.ID, fetched.Data.ID)
	assert.Len(t, fetched.Data.Positions, 2)
}

func TestCreateRejectsUnknownKind(t *testing.T) {
	r := newTestRouter(t)

	body := createRequestBody()
	body.Kind = models.ActivityKind("swimming")

	w := doRequest(r, http.MethodPost, "/api/v1/activities", bearerToken(t, "u1"), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivitiesScopedToUser(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/activities", bearerToken(t, "u1"), createRequestBody())
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data models.Activity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(r, http.MethodGet, "/api/v1/activities/"+created.Data.ID, bearerToken(t, "u2"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportGPXEndpoint(t *testing.T) {
	r := newTestRouter(t)
	auth := bearerToken(t, "u1")

	w := doRequest(r, http.MethodPost, "/api/v1/activities", auth, createRequestBody())
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data models.Activity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/activities/%s/gpx", created.Data.ID), auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/gpx+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<name>Morning Run</name>")
	assert.Contains(t, w.Body.String(), "<trkpt")
}

func TestSummaryEndpoint(t *testing.T) {
	r := newTestRouter(t)
	auth := bearerToken(t, "u1")

	for i := 0; i < 2; i++ {
		body := createRequestBody()
		for j := range body.Positions {
			body.Positions[j].Timestamp += int64(i) * 86400000
		}
		w := doRequest(r, http.MethodPost, "/api/v1/activities", auth, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(r, http.MethodGet, "/api/v1/activities/summary", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Data models.ActivitySummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.EqualValues(t, 2, summary.Data.Count)
	assert.Greater(t, summary.Data.DistanceKm, 0.0)
}

func TestDeleteEndpoint(t *testing.T) {
	r := newTestRouter(t)
	auth := bearerToken(t, "u1")

	w := doRequest(r, http.MethodPost, "/api/v1/activities", auth, createRequestBody())
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data models.Activity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(r, http.MethodDelete, "/api/v1/activities/"+created.Data.ID, auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/activities/"+created.Data.ID, auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
