package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-desk/cmd/api/dto"
	"review-desk/cmd/api/services"
	"review-desk/cmd/api/store"
	"review-desk/models"
)

type generatorFunc func(ctx context.Context, prompt string) string

func (f generatorFunc) Generate(ctx context.Context, prompt string) string { return f(ctx, prompt) }

type pingStore struct {
	store.Store
	err error
}

func (p pingStore) Ping(ctx context.Context) error { return p.err }

func setup(t *testing.T, gen generatorFunc) (*gin.Engine, *store.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewFileStore(filepath.Join(t.TempDir(), "submissions.json"))
	svc := services.NewReviewService(gen, st, services.ReviewServiceOptions{
		Now: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})

	r := gin.New()
	r.GET("/", IndexHandler())
	r.GET("/favicon.ico", FaviconHandler())
	r.GET("/health", HealthHandler(st, "file"))
	r.POST("/submit_review", SubmitReviewHandler(svc))
	r.GET("/submissions", ListSubmissionsHandler(svc))
	r.POST("/star_summary", StarSummaryHandler(svc))
	r.GET("/stats", StatsHandler(svc))
	return r, st
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func failing(ctx context.Context, prompt string) string { return "" }

func TestSubmitReview_FallbackWhenGenerationUnavailable(t *testing.T) {
	r, st := setup(t, failing)

	w := do(r, http.MethodPost, "/submit_review", `{"rating": 5, "review": "Great service, loved it!"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SubmitReviewResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, services.DefaultUserReply, resp.UserReply)

	records, err := st.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Rating)
	assert.Equal(t, "Great service, loved it!", records[0].Review)
	assert.Empty(t, records[0].AISummary)
	assert.Empty(t, records[0].AIActions)
}

func TestSubmitReview_BadRequests(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "malformed json", body: `{"rating": 5,`, wantErr: "invalid_request"},
		{name: "rating as string", body: `{"rating": "five", "review": "ok"}`, wantErr: "invalid_request"},
		{name: "rating out of range", body: `{"rating": 6, "review": "ok"}`, wantErr: services.ErrInvalidRating.Error()},
		{name: "missing rating", body: `{"review": "ok"}`, wantErr: services.ErrInvalidRating.Error()},
		{name: "blank review", body: `{"rating": 3, "review": "   "}`, wantErr: services.ErrEmptyReview.Error()},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			calls := 0
			r, st := setup(t, func(ctx context.Context, prompt string) string {
				calls++
				return "unused"
			})

			w := do(r, http.MethodPost, "/submit_review", testCase.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp dto.ErrorResponseDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, testCase.wantErr, resp.Error)
			assert.Equal(t, 0, calls)

			records, _ := st.Load(context.Background())
			assert.Empty(t, records)
		})
	}
}

func TestSubmissions_ReturnsInsertionOrder(t *testing.T) {
	r, _ := setup(t, func(ctx context.Context, prompt string) string {
		if strings.Contains(prompt, "Given this customer feedback") {
			return `{"summary": "s", "recommended_actions": "a"}`
		}
		return "Thanks! We hope to serve you better in the future!"
	})

	do(r, http.MethodPost, "/submit_review", `{"rating": 2, "review": "first"}`)
	do(r, http.MethodPost, "/submit_review", `{"rating": 4, "review": "second"}`)

	w := do(r, http.MethodGet, "/submissions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var records []dto.ReviewRecordDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Review)
	assert.Equal(t, "second", records[1].Review)
	assert.Equal(t, "s", records[1].AISummary)
	assert.Equal(t, "a", records[1].AIActions)
	assert.Equal(t, "2025-06-01T12:00:00.000000", records[0].Timestamp)
}

func TestSubmissions_EmptyIsArray(t *testing.T) {
	r, _ := setup(t, failing)

	w := do(r, http.MethodGet, "/submissions", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStarSummary(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		r, _ := setup(t, failing)

		w := do(r, http.MethodPost, "/star_summary", `{"reviews": [], "rating": 3}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"group_action": "(No reviews for this group.)"}`, w.Body.String())
	})

	t.Run("generation failure", func(t *testing.T) {
		r, _ := setup(t, failing)

		w := do(r, http.MethodPost, "/star_summary", `{"reviews": ["slow"], "rating": 1}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"group_action": "(Unable to summarize.)"}`, w.Body.String())
	})

	t.Run("summary", func(t *testing.T) {
		var prompt string
		r, _ := setup(t, func(ctx context.Context, p string) string {
			prompt = p
			return "Friendly staff. Add more seating."
		})

		w := do(r, http.MethodPost, "/star_summary", `{"reviews": ["cozy", "crowded"], "rating": 4.5}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"group_action": "Friendly staff. Add more seating."}`, w.Body.String())
		assert.Contains(t, prompt, "rating of 4.5 star(s)")
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := setup(t, failing)

		w := do(r, http.MethodPost, "/star_summary", `not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStatsHandler(t *testing.T) {
	r, st := setup(t, failing)
	ctx := context.Background()
	require.NoError(t, st.Append(ctx, models.ReviewRecord{Rating: 5, Review: "a", Timestamp: "2025-06-01T08:00:00.000000"}))
	require.NoError(t, st.Append(ctx, models.ReviewRecord{Rating: 2, Review: "b", Timestamp: "2025-06-02T08:00:00.000000"}))

	w := do(r, http.MethodGet, "/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.StatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 3.5, stats.AverageRating)
	assert.Equal(t, 1, stats.RatingCounts["5"])
	assert.Equal(t, 1, stats.ByDay["2025-06-02"])
}

func TestSystemHandlers(t *testing.T) {
	r, _ := setup(t, failing)

	w := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"running"`)

	w = do(r, http.MethodGet, "/favicon.ico", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "storage": "file"}`, w.Body.String())
}

func TestHealthDegradedWhenPingFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", HealthHandler(pingStore{err: errors.New("no reachable servers")}, "mongo"))

	w := do(r, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp dto.StatusResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "mongo", resp.Storage)
	assert.Equal(t, "no reachable servers", resp.Error)
}
