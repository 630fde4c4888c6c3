package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/mock"
	"github.com/enzg/one-big-key-sub004/internal/service"
	"github.com/enzg/one-big-key-sub004/models"
)

type handlerTestEnv struct {
	auth *mock.MockAuthService
	sync *mock.MockRelaySyncService
	mux  http.Handler
}

func newHandlerTestEnv(t *testing.T, ctrl *gomock.Controller) *handlerTestEnv {
	t.Helper()
	env := &handlerTestEnv{
		auth: mock.NewMockAuthService(ctrl),
		sync: mock.NewMockRelaySyncService(ctrl),
	}
	h := NewHandler(&service.Services{AuthService: env.auth, SyncService: env.sync}, logger.Nop())
	env.mux = h.Init()
	return env
}

func postJSON(t *testing.T, mux http.Handler, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	registered := models.User{UserID: 7, Login: "alice", AccountSalt: "salt-uuid"}
	env.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
		Return(registered, nil)
	env.auth.EXPECT().CreateToken(gomock.Any(), registered).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	rec := postJSON(t, env.mux, "/api/user/register", models.User{Login: "alice", Password: "secret"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "salt-uuid", body.AccountSalt, "client derives its encrypt password from the returned salt")
	assert.Empty(t, body.Password)
}

func TestRegister_DuplicateLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	env.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrLoginAlreadyTaken)

	rec := postJSON(t, env.mux, "/api/user/register", models.User{Login: "alice", Password: "secret"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	env.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	rec := postJSON(t, env.mux, "/api/user/register", models.User{Login: "alice"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	found := models.User{UserID: 7, Login: "alice", AccountSalt: "salt-uuid"}
	env.auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
		Return(found, nil)
	env.auth.EXPECT().CreateToken(gomock.Any(), found).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	rec := postJSON(t, env.mux, "/api/user/login", models.User{Login: "alice", Password: "secret"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "salt-uuid", body.AccountSalt)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidCredentials)

	rec := postJSON(t, env.mux, "/api/user/login", models.User{Login: "alice", Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
