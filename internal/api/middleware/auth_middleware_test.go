package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atlasboutique/storefront-platform/internal/api/middleware"
	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTKey = "test-signing-key"

func signedToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := &models.Claims{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTKey))
	require.NoError(t, err)

	return token
}

func protectedRequest(authorization string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notify-requests", nil)

	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

func TestAuthenticate(t *testing.T) {

	authMiddleware := middleware.NewAuthMiddleware([]byte(testJWTKey))

	t.Run("Success - Claims Reach The Handler", func(t *testing.T) {
		var seenClaims *models.Claims

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenClaims, _ = r.Context().Value(middleware.UserContextKey).(*models.Claims)
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := protectedRequest("Bearer " + signedToken(t, "admin", time.Hour))

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seenClaims)
		assert.Equal(t, "admin", seenClaims.Role)
	})

	t.Run("Failure - No Header", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("Handler must not run without credentials")
		})

		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, protectedRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Malformed Header", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("Handler must not run with a malformed header")
		})

		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, protectedRequest("Token abc"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Expired Token", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("Handler must not run with an expired token")
		})

		rec := httptest.NewRecorder()
		req := protectedRequest("Bearer " + signedToken(t, "admin", -time.Hour))

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Non-Admin Role", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("Handler must not run for a non-admin token")
		})

		rec := httptest.NewRecorder()
		req := protectedRequest("Bearer " + signedToken(t, "customer", time.Hour))

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Failure - Wrong Signing Key", func(t *testing.T) {
		otherMiddleware := middleware.NewAuthMiddleware([]byte("different-key"))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("Handler must not run with a token signed by another key")
		})

		rec := httptest.NewRecorder()
		req := protectedRequest("Bearer " + signedToken(t, "admin", time.Hour))

		otherMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
