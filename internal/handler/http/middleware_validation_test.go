package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-media-keeper/internal/validators"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeValidated[T any](body string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	rr := httptest.NewRecorder()
	validated[T](validators.NewRequestValidator())(next).ServeHTTP(rr, req)
	return rr
}

func TestValidated_InvalidJSON(t *testing.T) {
	for _, body := range []string{"", "{", "[1,2]", `{"email": 5}`} {
		called := false
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

		rr := executeValidated[models.RegisterRequest](body, next)

		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.JSONEq(t, `{"message":"invalid JSON body"}`, rr.Body.String(), body)
		assert.False(t, called)
	}
}

func TestValidated_ListsEveryViolation(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	rr := executeValidated[models.RegisterRequest](`{"email":"nope","name":"A","password":"short"}`, next)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{
		"message": "validation failed",
		"errors": [
			{"field": "email", "message": "email must be a valid email address"},
			{"field": "password", "message": "password must be at least 8 characters long"},
			{"field": "name", "message": "name must be at least 2 characters long"}
		]
	}`, rr.Body.String())
	assert.False(t, called)
}

func TestValidated_PassesNormalizedBody(t *testing.T) {
	var got models.RegisterRequest
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = bodyFrom[models.RegisterRequest](r)
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeValidated[models.RegisterRequest](`{"email":"  A@X.com ","name":" A b ","password":"Test1234"}`, next)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "A b", got.Name)
	assert.Equal(t, "Test1234", got.Password)
}

func TestValidated_WhitespaceNameFailsAfterTrim(t *testing.T) {
	rr := executeValidated[models.RegisterRequest](`{"email":"a@x.com","name":"   ","password":"Test1234"}`, http.NotFoundHandler())

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"field":"name"`)
}

func TestValidated_BodyTooLarge(t *testing.T) {
	body := `{"email":"a@x.com","name":"` + strings.Repeat("a", maxJSONBodySize) + `","password":"Test1234"}`

	rr := executeValidated[models.RegisterRequest](body, http.NotFoundHandler())

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestValidated_OptionalFields(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.True(t, bodyFrom[models.UpdateUserRequest](r).ToUpdate().IsEmpty())
	})

	rr := executeValidated[models.UpdateUserRequest](`{}`, next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}
