package http

import (
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

func strPtr(s string) *string { return &s }

func TestListUsers_EmptyIsArray(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.signedIn(1)
	deps.users.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/api/users", nil, testToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestMe(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.signedIn(4)
	deps.users.EXPECT().GetUser(gomock.Any(), int64(4)).Return(models.User{ID: 4, Email: "a@x.com", PasswordHash: "secret-hash"}, nil)

	rr := doRequest(router, http.MethodGet, "/api/users/me", nil, testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"email":"a@x.com"`)
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}

func TestMe_DeletedUser(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.signedIn(4)
	deps.users.EXPECT().GetUser(gomock.Any(), int64(4)).Return(models.User{}, store.ErrUserNotFound)

	rr := doRequest(router, http.MethodGet, "/api/users/me", nil, testToken)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"user not found"}`, rr.Body.String())
}

func TestUserByID_InvalidID(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.signedIn(4)

	for _, id := range []string{"abc", "0", "-3", "1.5", "99999999999999999999"} {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			rr := doRequest(router, method, "/api/users/"+id, nil, testToken)

			assert.Equal(t, http.StatusBadRequest, rr.Code, method+" "+id)
			assert.JSONEq(t, `{"message":"invalid id"}`, rr.Body.String())
		}
	}
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantID     int64
		serviceErr error
		wantStatus int
	}{
		{name: "me", target: "/api/users/me", wantID: 4, wantStatus: http.StatusOK},
		{name: "by id", target: "/api/users/9", wantID: 9, wantStatus: http.StatusOK},
		{name: "email collision", target: "/api/users/9", wantID: 9, serviceErr: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "missing user", target: "/api/users/9", wantID: 9, serviceErr: store.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.signedIn(4)

			update := models.UserUpdate{Email: strPtr("new@x.com"), Name: strPtr("Neo")}
			deps.users.EXPECT().UpdateUser(gomock.Any(), tt.wantID, update).Return(models.User{ID: tt.wantID, Name: "Neo"}, tt.serviceErr)

			rr := doRequest(router, http.MethodPatch, tt.target, strings.NewReader(`{"email":" NEW@x.com","name":"Neo "}`), testToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.signedIn(4)

	rr := doRequest(router, http.MethodPatch, "/api/users/me", strings.NewReader(`{"email":"nope"}`), testToken)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation failed")
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK, wantMessage: "password updated"},
		{name: "wrong current password", serviceErr: service.ErrWrongCurrentPassword, wantStatus: http.StatusBadRequest, wantMessage: "current password is incorrect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.signedIn(4)
			deps.users.EXPECT().ChangePassword(gomock.Any(), int64(4), models.ChangePasswordRequest{
				CurrentPassword: "Test1234",
				NewPassword:     "Fresh5678",
			}).Return(tt.serviceErr)

			rr := doRequest(router, http.MethodPatch, "/api/users/me/password",
				strings.NewReader(`{"currentPassword":"Test1234","newPassword":"Fresh5678"}`), testToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, rr.Body.String())
		})
	}
}

func TestDeleteUser(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.signedIn(4)
	gomock.InOrder(
		deps.users.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(nil),
		deps.users.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(store.ErrUserNotFound),
	)

	first := doRequest(router, http.MethodDelete, "/api/users/9", nil, testToken)
	second := doRequest(router, http.MethodDelete, "/api/users/9", nil, testToken)

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Empty(t, first.Body.String())
	assert.Equal(t, http.StatusNotFound, second.Code)
}
