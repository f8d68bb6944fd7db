package services

import (
	"context"
	"log/slog"
	"talk/auth"
	"talk/domain"
	"talk/errors"
	"talk/mocks"
	"talk/repositories"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var allowAll = AuthPolicy{EmailPassword: true, Anonymous: true}

func newAuthService(t *testing.T, policy AuthPolicy) (*AuthService, *mocks.MockIUserRepository, *auth.TokenIssuer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	tokens, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewAuthService(log, mockRepo, tokens, policy), mockRepo, tokens
}

func TestAuthService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, tokens := newAuthService(t, allowAll)
		email := "test@example.com"
		password := "secret1"

		// Expect CreateUser to be called with a hashed password, never the plain one
		var stored repositories.User
		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user repositories.User) error {
				stored = user
				return nil
			}).
			Times(1)

		session, err := svc.CreateAccount(ctx, email, password)

		req.NoError(err)
		req.NotEmpty(session.Token)
		req.Equal(email, session.Identity.Email)
		req.False(session.Identity.IsAnonymous)
		req.NotEqual(password, stored.PasswordHash)
		match, err := auth.ComparePassword(password, stored.PasswordHash)
		req.NoError(err)
		req.True(match)

		claims, err := tokens.ValidateToken(session.Token, auth.KindSession)
		req.NoError(err)
		req.Equal(stored.ID, claims.UserID)
	})

	t.Run("should fail with weak password", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		_, err := svc.CreateAccount(ctx, "test@example.com", "short")

		req.ErrorIs(err, errors.ErrWeakPassword)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)
		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		_, err := svc.CreateAccount(ctx, "not-an-email", "secret1")

		req.ErrorIs(err, errors.ErrInvalidEmail)
	})

	t.Run("should fail when the email is taken", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)
		mockRepo.EXPECT().CreateUser(gomock.Any()).Return(errors.ErrEmailAlreadyInUse).Times(1)

		_, err := svc.CreateAccount(ctx, "dup@example.com", "secret1")

		req.ErrorIs(err, errors.ErrEmailAlreadyInUse)
	})

	t.Run("should fail when email sign-in is disabled", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, AuthPolicy{Anonymous: true})
		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		_, err := svc.CreateAccount(ctx, "test@example.com", "secret1")

		req.ErrorIs(err, errors.ErrOperationNotAllowed)
	})
}

func TestAuthService_SignInWithPassword(t *testing.T) {
	ctx := context.Background()
	email := "user@example.com"
	password := "secret123"
	hashedPassword, err := auth.HashPassword(password)
	require.NoError(t, err)
	storedUser := repositories.User{ID: "uuid-123", Email: email, PasswordHash: hashedPassword, DisplayName: "Ada"}

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)
		mockRepo.EXPECT().GetUserByEmail(email).Return(storedUser, nil).Times(1)

		session, err := svc.SignInWithPassword(ctx, email, password)

		req.NoError(err)
		req.Equal(domain.Identity{ID: "uuid-123", DisplayName: "Ada", Email: email}, session.Identity)
	})

	t.Run("should return invalid credentials when password does not match", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)
		mockRepo.EXPECT().GetUserByEmail(email).Return(storedUser, nil).Times(1)

		_, err := svc.SignInWithPassword(ctx, email, "wrong-password")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)
		mockRepo.EXPECT().GetUserByEmail("unknown@example.com").
			Return(repositories.User{}, errors.ErrUserNotFound).Times(1)

		_, err := svc.SignInWithPassword(ctx, "unknown@example.com", "anyPassword")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should reject a malformed email before any lookup", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, allowAll)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any()).Times(0)

		_, err := svc.SignInWithPassword(ctx, "nope", password)

		req.ErrorIs(err, errors.ErrInvalidEmail)
	})

	t.Run("should fail when email sign-in is disabled", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newAuthService(t, AuthPolicy{})

		_, err := svc.SignInWithPassword(ctx, email, password)

		req.ErrorIs(err, errors.ErrOperationNotAllowed)
	})
}

func TestAuthService_SignInAnonymously(t *testing.T) {
	ctx := context.Background()

	t.Run("should create an anonymous account", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, tokens := newAuthService(t, allowAll)
		mockRepo.EXPECT().CreateUser(gomock.Any()).
			DoAndReturn(func(user repositories.User) error {
				req.True(user.Anonymous)
				req.Empty(user.Email)
				return nil
			}).Times(1)

		session, err := svc.SignInAnonymously(ctx)

		req.NoError(err)
		req.True(session.Identity.IsAnonymous)
		claims, err := tokens.ValidateToken(session.Token, auth.KindSession)
		req.NoError(err)
		req.True(claims.Anonymous)
	})

	t.Run("should fail when anonymous sign-in is disabled", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, _ := newAuthService(t, AuthPolicy{EmailPassword: true})
		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		_, err := svc.SignInAnonymously(ctx)

		req.ErrorIs(err, errors.ErrOperationNotAllowed)
	})
}

func TestAuthService_SignInWithCustomToken(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the account on first exchange", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, tokens := newAuthService(t, AuthPolicy{})
		custom, err := tokens.GenerateCustomToken("bootstrap-user", time.Minute)
		req.NoError(err)

		gomock.InOrder(
			mockRepo.EXPECT().GetUserByID("bootstrap-user").Return(repositories.User{}, errors.ErrUserNotFound),
			mockRepo.EXPECT().CreateUser(gomock.Any()).Return(nil),
		)

		session, err := svc.SignInWithCustomToken(ctx, custom)

		req.NoError(err)
		req.Equal("bootstrap-user", session.Identity.ID)
	})

	t.Run("should reuse an existing account", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, tokens := newAuthService(t, allowAll)
		custom, err := tokens.GenerateCustomToken("known", time.Minute)
		req.NoError(err)
		mockRepo.EXPECT().GetUserByID("known").Return(repositories.User{ID: "known", DisplayName: "Bob"}, nil)
		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		session, err := svc.SignInWithCustomToken(ctx, custom)

		req.NoError(err)
		req.Equal("Bob", session.Identity.DisplayName)
	})

	t.Run("should refuse a session token", func(t *testing.T) {
		req := require.New(t)
		svc, _, tokens := newAuthService(t, allowAll)
		sessionToken, err := tokens.GenerateToken("known", false)
		req.NoError(err)

		_, err = svc.SignInWithCustomToken(ctx, sessionToken)

		req.ErrorIs(err, errors.ErrInvalidCustomToken)
	})

	t.Run("should refuse garbage", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newAuthService(t, allowAll)

		_, err := svc.SignInWithCustomToken(ctx, "not-a-jwt")

		req.ErrorIs(err, errors.ErrInvalidCustomToken)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	req := require.New(t)
	svc, mockRepo, _ := newAuthService(t, allowAll)

	// Given the name is trimmed before storing
	mockRepo.EXPECT().UpdateDisplayName("uid", "Ada").
		Return(repositories.User{ID: "uid", DisplayName: "Ada", Email: "ada@example.com"}, nil)

	identity, err := svc.UpdateProfile(context.Background(), "uid", "  Ada ")

	req.NoError(err)
	req.Equal("Ada", identity.DisplayName)
	req.Equal("ada@example.com", identity.Email)
}

func TestAuthService_VerifySession(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve the identity", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, tokens := newAuthService(t, allowAll)
		token, err := tokens.GenerateToken("uid", false)
		req.NoError(err)
		mockRepo.EXPECT().GetUserByID("uid").Return(repositories.User{ID: "uid", Email: "a@b.co"}, nil)

		identity, err := svc.VerifySession(ctx, token)

		req.NoError(err)
		req.Equal("uid", identity.ID)
	})

	t.Run("should refuse a custom token", func(t *testing.T) {
		req := require.New(t)
		svc, _, tokens := newAuthService(t, allowAll)
		custom, err := tokens.GenerateCustomToken("uid", time.Minute)
		req.NoError(err)

		_, err = svc.VerifySession(ctx, custom)

		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should refuse a deleted user", func(t *testing.T) {
		req := require.New(t)
		svc, mockRepo, tokens := newAuthService(t, allowAll)
		token, err := tokens.GenerateToken("gone", false)
		req.NoError(err)
		mockRepo.EXPECT().GetUserByID("gone").Return(repositories.User{}, errors.ErrUserNotFound)

		_, err = svc.VerifySession(ctx, token)

		req.ErrorIs(err, errors.ErrUnauthenticated)
	})
}
