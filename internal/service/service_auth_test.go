package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enzg/one-big-key-sub004/internal/config"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/mock"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
)

func testAuthConfig() config.App {
	return config.App{
		PasswordHashKey: "test-hash-key",
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "sync-relay",
		TokenDuration:   time.Hour,
	}
}

func TestRegisterUser_HashesPasswordAndMintsSalt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			assert.True(t, utils.VerifyHashString("secret", user.Password, "test-hash-key"),
				"stored password must be the HMAC hash of the plaintext")
			assert.NotEmpty(t, user.AccountSalt)
			user.UserID = 7
			return user, nil
		})

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())
	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
	assert.NotEmpty(t, registered.AccountSalt)
	assert.Empty(t, registered.Password, "password never leaves the service")
}

func TestRegisterUser_DuplicateLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())
	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, ErrLoginAlreadyTaken)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := models.User{
		UserID:      7,
		Login:       "alice",
		Password:    utils.HashString("secret", "test-hash-key"),
		AccountSalt: "salt-uuid",
	}

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())
	user, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "salt-uuid", user.AccountSalt, "login returns the salt so a new device can rebuild its credential")
	assert.Empty(t, user.Password)
}

func TestLogin_WrongPasswordAndUnknownLoginAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{Login: "alice", Password: utils.HashString("secret", "test-hash-key")}, nil)
	repo.EXPECT().FindUserByLogin(gomock.Any(), "nobody").
		Return(models.User{}, store.ErrNoUserWasFound)

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), models.User{Login: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepositoryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{}, errors.New("connection reset"))

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())
	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), testAuthConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7, Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), testAuthConfig(), logger.Nop())
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// A token signed under a different key fails verification.
	otherCfg := testAuthConfig()
	otherCfg.TokenSignKey = "other-sign-key"
	otherSvc := NewAuthService(mock.NewMockUserRepository(ctrl), otherCfg, logger.Nop())
	foreign, err := otherSvc.CreateToken(ctx, models.User{UserID: 7})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
