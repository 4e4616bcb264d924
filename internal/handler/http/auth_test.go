package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-media-keeper/internal/service"
	"github.com/MKhiriev/go-media-keeper/internal/store"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister_Created(t *testing.T) {
	router, deps := newTestRouter(t)
	user := models.User{ID: 1, Email: "a@x.com", Name: "A b", PasswordHash: "$2a$10$hash"}

	gomock.InOrder(
		deps.auth.EXPECT().RegisterUser(gomock.Any(), models.RegisterRequest{Email: "a@x.com", Name: "A b", Password: "Test1234"}).Return(user, nil),
		deps.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt.value"}, nil),
	)

	rr := doRequest(router, http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"A@x.com","name":"A b","password":"Test1234"}`), "")

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.value", resp["token"])
	assert.NotContains(t, rr.Body.String(), "hash")
	assert.Equal(t, "a@x.com", resp["user"].(map[string]any)["email"])
}

func TestRegister_EmailTaken(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	rr := doRequest(router, http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@x.com","name":"A b","password":"Test1234"}`), "")

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"email already in use"}`, rr.Body.String())
}

func TestRegister_ValidationNeverReachesService(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@x.com","name":"A b","password":"1234567"}`), "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"field":"password"`)
}

func TestLogin_Success(t *testing.T) {
	router, deps := newTestRouter(t)
	user := models.User{ID: 1, Email: "a@x.com"}

	deps.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@x.com", Password: "Test1234"}).Return(user, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "t"}, nil)

	rr := doRequest(router, http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"Test1234"}`), "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"token":"t"`)
}

func TestLogin_SameAnswerForUnknownEmailAndWrongPassword(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	).Times(2)

	unknown := doRequest(router, http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ghost@x.com","password":"Test1234"}`), "")
	wrong := doRequest(router, http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"Wrong1234"}`), "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.JSONEq(t, `{"message":"invalid email or password"}`, wrong.Body.String())
}

func TestLogin_TokenFailureIs500(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{ID: 1}, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := doRequest(router, http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"Test1234"}`), "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rr.Body.String())
}
