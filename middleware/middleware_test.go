package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mercato/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return s
}

func userClaims(role string) *Claims {
	return &Claims{
		Name:   "Test User",
		UserID: "u_test",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	var gotUserID, gotRole string
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		gotRole, _ = r.Context().Value(globals.RoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userClaims("user")))
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u_test", gotUserID)
	assert.Equal(t, "user", gotRole)
}

func TestAuthenticateRejectsMissingAndMalformedTokens(t *testing.T) {
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	for _, header := range []string{"", "Bearer", "Token abc", "Bearer not.a.jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h(rec, req, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	claims := userClaims("user")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	rec := httptest.NewRecorder()
	h(rec, req, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthPassesThroughWithoutToken(t *testing.T) {
	ran := false
	h := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ran = true
		uid, _ := r.Context().Value(globals.UserIDKey).(string)
		assert.Empty(t, uid)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	h := AdminOnly(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userClaims("admin")))
	rec := httptest.NewRecorder()
	h(rec, req, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userClaims("user")))
	rec = httptest.NewRecorder()
	h(rec, req, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidateJWT(t *testing.T) {
	raw := "Bearer " + signToken(t, userClaims("user"))
	claims, err := ValidateJWT(raw)
	require.NoError(t, err)
	assert.Equal(t, "u_test", claims.UserID)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}
