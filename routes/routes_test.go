package routes

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitledger/models"
	"fitledger/services"
	"fitledger/storage"
	"fitledger/utils"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *services.Tracker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewLedgerStore(storage.NewMemoryKV(), slog.Default())
	tracker := services.NewTracker(store)
	tracker.SetClock(func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	})

	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	r := SetupRouter(Deps{
		Auth:      services.NewAuthService("me@example.com", hash, []byte("test-jwt-secret")),
		Tracker:   tracker,
		Catalog:   services.NewCatalogService(),
		Profile:   services.NewProfileService(store, tracker),
		Analytics: services.NewAnalyticsService(tracker),
		RT:        services.NewRealtimeHub(slog.Default()),
	})
	return r, tracker
}

func perform(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := perform(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "me@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := perform(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "me@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := setupTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/ledger/stats", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/ledger/stats", "garbage", nil).Code)
}

func TestLogFoodAndReadStats(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := login(t, r)

	w := perform(r, http.MethodPost, "/ledger/foods", token, gin.H{"name": "Banana", "calories": 105})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodPost, "/ledger/activities", token, gin.H{
		"name": "Running", "calories": 300, "duration_minutes": 30,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, "/ledger/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.DailyStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 105.0, stats.Consumed)
	assert.Equal(t, 300.0, stats.Burned)
	assert.Equal(t, -195.0, stats.Net)
	assert.Equal(t, 2595.0, stats.Remaining)
}

func TestValidationMapsTo400(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := login(t, r)

	w := perform(r, http.MethodPost, "/ledger/foods", token, gin.H{"name": "bad", "calories": -10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPut, "/ledger/goal", token, gin.H{"goal": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodDelete, "/ledger/foods/notanumber", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodDelete, "/ledger/foods/7", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDayHistoryEndpoint(t *testing.T) {
	r, tracker := setupTestRouter(t)
	token := login(t, r)

	require.NoError(t, tracker.AddFood("Rice", 205))

	// move the clock forward a day; yesterday stays readable
	tracker.SetClock(func() time.Time {
		return time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	})

	w := perform(r, http.MethodGet, "/ledger/day/2025-03-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rec models.DailyLedgerRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, 205.0, rec.Consumed)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/ledger/day/2020-01-01", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/ledger/day/garbage", token, nil).Code)
}

func TestRecentFoodsEndpoint(t *testing.T) {
	r, tracker := setupTestRouter(t)
	token := login(t, r)

	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, tracker.AddFood(name, 10))
	}

	w := perform(r, http.MethodGet, "/ledger/foods/recent", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var foods []models.FoodEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	require.Len(t, foods, 5)
	assert.Equal(t, "f", foods[4].Name)
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := login(t, r)

	w := perform(r, http.MethodGet, "/catalog/foods?q=rice", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var foods []models.CatalogFood
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	require.Len(t, foods, 1)
	assert.Equal(t, 205.0, foods[0].Calories)

	w = perform(r, http.MethodGet, "/catalog/activities/estimate?name=Running&minutes=30", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var est struct {
		Calories float64 `json:"calories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.Equal(t, 300.0, est.Calories)

	w = perform(r, http.MethodGet, "/catalog/suggestions?hour=8", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "morning")
}

func TestProfileEndpoints(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := login(t, r)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/profile", token, nil).Code)

	w := perform(r, http.MethodPut, "/profile", token, models.Profile{
		HeightCm: 175, WeightKg: 70, AgeYears: 30, Sex: "male",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sum services.ProfileSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, "Normal weight", sum.BMICategory)
	assert.Equal(t, 2250.0, sum.SuggestedGoal)

	// the seeded goal shows up in a fresh day's stats
	w = perform(r, http.MethodGet, "/ledger/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.DailyStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2250.0, stats.Goal)
}

func TestRolloverEndpoint(t *testing.T) {
	r, tracker := setupTestRouter(t)
	token := login(t, r)

	w := perform(r, http.MethodPost, "/ledger/rollover", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rolled":true`)

	w = perform(r, http.MethodPost, "/ledger/rollover", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rolled":false`)

	tracker.SetClock(func() time.Time {
		return time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC)
	})
	w = perform(r, http.MethodPost, "/ledger/rollover", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rolled":true`)
	assert.Contains(t, w.Body.String(), "2025-03-11")
}
