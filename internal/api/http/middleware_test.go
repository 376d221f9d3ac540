package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789ab", 60)

	var gotClaims *security.UserClaims
	handler := AuthMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = claimsFrom(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(42, "staff@example.com", domain.UserRoleUser)
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, int32(42), gotClaims.UserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789ab", 60)
	protected := AuthMiddleware(tokens)(adminOnly(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(role domain.UserRole) int {
		token, _ := tokens.GenerateAccessToken(1, "x@example.com", role)
		r := httptest.NewRequest("GET", "/api/v1/users", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do(domain.UserRoleAdmin))
	assert.Equal(t, http.StatusOK, do(domain.UserRoleSuperAdmin))
	assert.Equal(t, http.StatusForbidden, do(domain.UserRoleUser))
}
