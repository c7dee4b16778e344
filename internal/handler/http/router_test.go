package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/fixtures"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/response"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/export"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/jwt"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/sse"
	"github.com/ncl-services/ncl-backend-go/internal/repository/memory"
	attendanceService "github.com/ncl-services/ncl-backend-go/internal/service/attendance"
	authService "github.com/ncl-services/ncl-backend-go/internal/service/auth"
	notificationService "github.com/ncl-services/ncl-backend-go/internal/service/notification"
	scheduleService "github.com/ncl-services/ncl-backend-go/internal/service/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	seed, err := fixtures.Load("", time.UTC)
	require.NoError(t, err)

	store := memory.NewSessionStore()
	hub := sse.NewHub()
	notifier := notificationService.NewNotificationService(hub, notificationService.Config{})
	t.Cleanup(notifier.Stop)

	tracker, err := attendanceService.NewTrackerService(ctx,
		store,
		memory.NewLedger(),
		memory.NewCatalog(seed.Jobs, seed.Checklists),
		memory.NewCardRegistry(seed.TempCards),
		notifier,
		attendanceService.WithLocation(time.UTC),
	)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(handlerTestSecret, time.Hour)
	authSvc := authService.NewAuthService(memory.NewCredentialRepository(seed.Credentials), jwtService, store)
	scheduleSvc := scheduleService.NewScheduleService(memory.NewShiftRepository(seed.Shifts, seed.PastShifts))

	router := NewRouter(RouterOptions{Env: "test", FrontendURL: "http://localhost:3000"}, jwtService, hub, Handlers{
		Auth:         NewAuthHandler(authSvc),
		Job:          NewJobHandler(memory.NewCatalog(seed.Jobs, seed.Checklists)),
		Timekeeping:  NewTimekeepingHandler(tracker, time.UTC),
		Schedule:     NewScheduleHandler(scheduleSvc, time.UTC),
		Notification: NewNotificationHandler(notifier, jwtService),
	})
	return &testServer{handler: router}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"staff_id": "staff001", "pin": "1234"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_Login(t *testing.T) {
	srv := newTestServer(t)

	t.Run("wrong pin", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"staff_id": "staff001", "pin": "9999"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed staff id", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"staff_id": "bob", "pin": "1234"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeEnvelope(t, rec)
		require.NotNil(t, body.Error)
		assert.Contains(t, body.Error.Details, "staff_id")
	})

	t.Run("success and me", func(t *testing.T) {
		token := srv.login(t)
		rec := srv.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sarah Mitchell")
	})
}

func TestRouter_RequiresToken(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/timekeeping/state", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/timekeeping/state", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Jobs(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/jobs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "job004")

	rec = srv.do(t, http.MethodGet, "/api/v1/jobs/job003/checklist", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Companionship provided")

	rec = srv.do(t, http.MethodGet, "/api/v1/jobs/job999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SelfCheckInOut(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-in", token, map[string]string{"job_id": "job002"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Successfully checked in!", decodeEnvelope(t, rec).Message)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-in", token, map[string]string{"job_id": "job001"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/proxy/check-out", token, map[string]string{"card_code": "a1b2c3"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/timekeeping/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"On-Duty"`)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-out", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-out", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/timekeeping/records?page=1&limit=10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 1, body.Meta.Count)
	assert.Contains(t, rec.Body.String(), "Standard Cleaning - Jones Apartment")
}

func TestRouter_ProxyCheckInOut(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/timekeeping/proxy/check-in", token, map[string]string{"card_code": "ZZZZZZ"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/proxy/check-in", token, map[string]string{"card_code": " a1b2c3 "})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decodeEnvelope(t, rec).Message, "Maria Lopez")

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-out", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/proxy/check-out", token, map[string]string{"card_code": "D4E5F6"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/timekeeping/proxy/check-out", token, map[string]string{"card_code": "A1B2C3"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"Proxy"`)
}

func TestRouter_Validation(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"blank job id", http.MethodPost, "/api/v1/timekeeping/check-in", map[string]string{"job_id": ""}, http.StatusUnprocessableEntity},
		{"unknown job id", http.MethodPost, "/api/v1/timekeeping/check-in", map[string]string{"job_id": "cleaning"}, http.StatusNotFound},
		{"short card", http.MethodPost, "/api/v1/timekeeping/proxy/check-in", map[string]string{"card_code": "A1"}, http.StatusNotFound},
		{"long card", http.MethodPost, "/api/v1/timekeeping/proxy/check-in", map[string]string{"card_code": "A1B2C3D"}, http.StatusNotFound},
		{"oversized card", http.MethodPost, "/api/v1/timekeeping/proxy/check-out", map[string]string{"card_code": "A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4E"}, http.StatusUnprocessableEntity},
		{"non-json body", http.MethodPost, "/api/v1/timekeeping/check-in", "job001", http.StatusBadRequest},
		{"limit too large", http.MethodGet, "/api/v1/timekeeping/records?limit=500", nil, http.StatusUnprocessableEntity},
		{"page not a number", http.MethodGet, "/api/v1/timekeeping/records?page=two", nil, http.StatusUnprocessableEntity},
		{"bad month", http.MethodGet, "/api/v1/schedule?month=2025-13", nil, http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := srv.do(t, c.method, c.path, token, c.body)
			assert.Equal(t, c.want, rec.Code, rec.Body.String())
		})
	}

	// nothing above may have opened an attendance
	rec := srv.do(t, http.MethodGet, "/api/v1/timekeeping/state", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestRouter_Schedule(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/schedule?month=2025-10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"month":"2025-10"`)

	rec = srv.do(t, http.MethodGet, "/api/v1/schedule/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ExportRecords(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-in", token, map[string]string{"job_id": "job001"})
	srv.do(t, http.MethodPost, "/api/v1/timekeeping/check-out", token, nil)

	rec := srv.do(t, http.MethodGet, "/api/v1/timekeeping/records/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestRouter_NotificationStreamRejectsAccessToken(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/notifications/stream", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/notifications/stream?token="+token, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subscribers":0`)
}
