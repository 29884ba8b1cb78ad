package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSession(t *testing.T) (http.Handler, *string) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	mw := NewSessionMiddleware(store)

	var seenID string
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetSessionID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return mw.EnsureSession(probe), &seenID
}

func TestEnsureSession_NewVisitor(t *testing.T) {
	handler, seenID := setupSession(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, *seenID)

	// A session cookie must be issued on first contact
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionName, cookies[0].Name)
}

func TestEnsureSession_ReturningVisitor(t *testing.T) {
	handler, seenID := setupSession(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store/", nil))
	firstID := *seenID
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Replay the cookie: the session ID must be stable
	req := httptest.NewRequest(http.MethodGet, "/store/cart", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, firstID, *seenID)
}

func TestEnsureSession_BadCookieGetsFreshSession(t *testing.T) {
	handler, seenID := setupSession(t)

	req := httptest.NewRequest(http.MethodGet, "/store/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "garbage"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, *seenID)
}

func TestGetSessionID_MissingContext(t *testing.T) {
	assert.Empty(t, GetSessionID(context.Background()))
}

func TestWithSessionID_RoundTrip(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetSessionID(ctx))
}
