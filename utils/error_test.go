package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	notFound := NewError(KindNotFound, "test not found")
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidID, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("lookup: %w", notFound), http.StatusNotFound},
		{NewError(KindConflict, "slot unavailable"), http.StatusConflict},
		{NewError(KindUnavailable, "uploads disabled"), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrap(ErrInvalidID, errors.New("encoding/hex: invalid byte"))
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("store exploded") })
	r.NoRoute(NotFoundHandler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"store exploded"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope?x=1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"The requested url is invalid: [/nope?x=1]"}`, rec.Body.String())
}

func TestParseObjectID(t *testing.T) {
	_, err := ParseObjectID("xyz")
	assert.True(t, errors.Is(err, ErrInvalidID))

	id, err := ParseObjectID("65f0c0ffee0000000000beef")
	assert.NoError(t, err)
	assert.Equal(t, "65f0c0ffee0000000000beef", id.Hex())
}
