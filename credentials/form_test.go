package credentials_test

import (
	"context"
	"fmt"
	"log/slog"
	"talk/credentials"
	"talk/domain"
	"talk/errors"
	"talk/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newForm(t *testing.T) (*credentials.Form, *mocks.MockIAuthProvider) {
	t.Helper()
	auth := mocks.NewMockIAuthProvider(gomock.NewController(t))
	return credentials.NewForm(logs.GetLoggerFromLevel(slog.LevelDebug), auth), auth
}

func TestMapAuthError(t *testing.T) {
	cases := []struct {
		err  error
		kind credentials.AuthErrorKind
	}{
		{errors.ErrEmailAlreadyInUse, credentials.DuplicateEmail},
		{errors.ErrWeakPassword, credentials.WeakPassword},
		{errors.ErrInvalidEmail, credentials.InvalidEmailFormat},
		{errors.ErrInvalidCredentials, credentials.InvalidCredentials},
		{errors.ErrUserNotFound, credentials.InvalidCredentials},
		{errors.ErrWrongPassword, credentials.InvalidCredentials},
		{errors.ErrOperationNotAllowed, credentials.ProviderDisabled},
		{fmt.Errorf("dial: %w", errors.ErrUnavailable), credentials.Unknown},
		{fmt.Errorf("boom"), credentials.Unknown},
	}
	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			req := require.New(t)

			// When
			first := credentials.MapAuthError(c.err)
			second := credentials.MapAuthError(fmt.Errorf("wrapped: %w", c.err))

			// Then
			req.Equal(c.kind, first.Kind)
			req.NotEmpty(first.Message)
			req.Equal(first.Kind, second.Kind)
			req.Equal(first.Message, second.Message)
			req.ErrorIs(first, c.err)
		})
	}
}

func TestForm_SubmitCredentials(t *testing.T) {
	ctx := context.Background()
	ada := domain.Identity{ID: "uid-1", Email: "ada@example.com"}

	t.Run("should sign in with password", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)

		// Given
		auth.EXPECT().SignInWithPassword(ctx, "ada@example.com", "secret1").Return(ada, nil)

		// When
		err := f.SubmitCredentials(ctx, credentials.ModeLogin, "ada@example.com", "secret1", "")

		// Then
		req.NoError(err)
		req.Empty(f.Message())
		req.False(f.Busy())
	})

	t.Run("should register then set the display name", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)

		// Given
		gomock.InOrder(
			auth.EXPECT().CreateAccount(ctx, "ada@example.com", "secret1").Return(ada, nil),
			auth.EXPECT().UpdateProfile(ctx, "Ada").Return(ada, nil),
		)

		// When
		err := f.SubmitCredentials(ctx, credentials.ModeRegister, "ada@example.com", "secret1", "  Ada ")

		// Then
		req.NoError(err)
	})

	t.Run("should skip the profile update without a display name", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)

		// Given
		auth.EXPECT().CreateAccount(ctx, "ada@example.com", "secret1").Return(ada, nil)

		// When
		err := f.SubmitCredentials(ctx, credentials.ModeRegister, "ada@example.com", "secret1", " ")

		// Then
		req.NoError(err)
	})

	t.Run("should surface a mapped failure and clear it on the next submission", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)

		// Given
		auth.EXPECT().CreateAccount(ctx, "ada@example.com", "123").Return(domain.Identity{}, errors.ErrWeakPassword)
		auth.EXPECT().SignInWithPassword(ctx, "ada@example.com", "secret1").Return(ada, nil)

		// When
		err := f.SubmitCredentials(ctx, credentials.ModeRegister, "ada@example.com", "123", "Ada")

		// Then
		var failure *credentials.AuthFailure
		req.True(errors.As(err, &failure))
		req.Equal(credentials.WeakPassword, failure.Kind)
		req.Equal(failure.Message, f.Message())

		// When
		err = f.SubmitCredentials(ctx, credentials.ModeLogin, "ada@example.com", "secret1", "")

		// Then
		req.NoError(err)
		req.Empty(f.Message())
	})

	t.Run("should ignore a submission while another is in flight", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)
		var nested error

		// Given
		auth.EXPECT().SignInWithPassword(ctx, "ada@example.com", "secret1").
			DoAndReturn(func(ctx context.Context, _, _ string) (domain.Identity, error) {
				req.True(f.Busy())
				nested = f.SubmitCredentials(ctx, credentials.ModeLogin, "ada@example.com", "secret1", "")
				return ada, nil
			}).Times(1)

		// When
		err := f.SubmitCredentials(ctx, credentials.ModeLogin, "ada@example.com", "secret1", "")

		// Then
		req.NoError(err)
		req.NoError(nested)
		req.False(f.Busy())
	})
}

func TestForm_SubmitAnonymous(t *testing.T) {
	ctx := context.Background()

	t.Run("should show the guest message on an unknown failure", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)

		// Given
		auth.EXPECT().SignInAnonymously(ctx).Return(domain.Identity{}, errors.ErrUnavailable)

		// When
		err := f.SubmitAnonymous(ctx)

		// Then
		req.Error(err)
		req.Equal("Guest sign-in failed.", f.Message())
	})

	t.Run("should report a disabled provider", func(t *testing.T) {
		req := require.New(t)
		f, auth := newForm(t)

		// Given
		auth.EXPECT().SignInAnonymously(ctx).Return(domain.Identity{}, errors.ErrOperationNotAllowed)

		// When
		err := f.SubmitAnonymous(ctx)

		// Then
		req.Error(err)
		req.Equal(credentials.MapAuthError(errors.ErrOperationNotAllowed).Message, f.Message())
	})
}

func TestForm_ToggleMode(t *testing.T) {
	req := require.New(t)
	f, auth := newForm(t)
	ctx := context.Background()

	// Given
	auth.EXPECT().SignInWithPassword(ctx, "x", "y").Return(domain.Identity{}, errors.ErrInvalidEmail)
	_ = f.SubmitCredentials(ctx, credentials.ModeLogin, "x", "y", "")
	req.NotEmpty(f.Message())

	// When
	mode := f.ToggleMode()

	// Then
	req.Equal(credentials.ModeRegister, mode)
	req.Empty(f.Message())
	req.Equal(credentials.ModeLogin, f.ToggleMode())
}
