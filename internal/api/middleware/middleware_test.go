package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func signed(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(id.String()))
	})
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	valid := signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	tests := []struct {
		name        string
		allowHeader bool
		headers     map[string]string
		status      int
	}{
		{name: "valid token", headers: map[string]string{"Authorization": "Bearer " + valid}, status: http.StatusOK},
		{name: "missing token", status: http.StatusUnauthorized},
		{name: "malformed token", headers: map[string]string{"Authorization": "Bearer nope"}, status: http.StatusUnauthorized},
		{name: "not bearer", headers: map[string]string{"Authorization": "Basic abc"}, status: http.StatusUnauthorized},
		{
			name: "wrong secret",
			headers: map[string]string{"Authorization": "Bearer " + signed(t, jwt.SigningMethodHS256, []byte("other"),
				jwt.RegisteredClaims{Subject: userID.String()})},
			status: http.StatusUnauthorized,
		},
		{
			name: "expired",
			headers: map[string]string{"Authorization": "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret),
				jwt.RegisteredClaims{Subject: userID.String(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))})},
			status: http.StatusUnauthorized,
		},
		{
			name: "subject is not a uuid",
			headers: map[string]string{"Authorization": "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret),
				jwt.RegisteredClaims{Subject: "42"})},
			status: http.StatusUnauthorized,
		},
		{name: "header disabled", headers: map[string]string{"X-User-ID": userID.String()}, status: http.StatusUnauthorized},
		{name: "header allowed", allowHeader: true, headers: map[string]string{"X-User-ID": userID.String()}, status: http.StatusOK},
		{name: "header garbage", allowHeader: true, headers: map[string]string{"X-User-ID": "abc"}, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Auth(AuthConfig{JWTSecret: testSecret, AllowHeader: tt.allowHeader}, nopLogger{})(echoUser())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}

func TestGetUserIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}

type recordedObservation struct {
	method string
	route  string
	status int
}

type fakeHTTPMetrics struct {
	mu  sync.Mutex
	obs []recordedObservation
}

func (f *fakeHTTPMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, recordedObservation{method: method, route: route, status: status})
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, m.obs, 1)
	assert.Equal(t, recordedObservation{
		method: http.MethodGet,
		route:  "/api/v1/bookings/{bookingId}",
		status: http.StatusNotFound,
	}, m.obs[0])
}
