package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(12)
	b := GenerateRandomString(12)
	assert.Len(t, a, 12)
	assert.Len(t, b, 12)
	assert.NotEqual(t, a, b)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail(" user@example.com "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("user@"))
	assert.False(t, ValidEmail(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, 404, "Cart not found")

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success": false, "message": "Cart not found"}`, rec.Body.String())
}
