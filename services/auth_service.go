//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"talk/auth"
	"talk/domain"
	"talk/errors"
	"talk/repositories"
	"time"

	"github.com/google/uuid"
)

type IAuthService interface {
	SignInWithPassword(ctx context.Context, email, password string) (domain.AuthSession, error)
	CreateAccount(ctx context.Context, email, password string) (domain.AuthSession, error)
	UpdateProfile(ctx context.Context, userID, displayName string) (domain.Identity, error)
	SignInAnonymously(ctx context.Context) (domain.AuthSession, error)
	SignInWithCustomToken(ctx context.Context, customToken string) (domain.AuthSession, error)
	VerifySession(ctx context.Context, token string) (domain.Identity, error)
}

// AuthPolicy enables or disables the sign-in methods of the provider.
type AuthPolicy struct {
	EmailPassword bool
	Anonymous     bool
}

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	tokens         *auth.TokenIssuer
	policy         AuthPolicy
	now            func() time.Time
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository,
	tokens *auth.TokenIssuer, policy AuthPolicy) *AuthService {
	return &AuthService{log: log, userRepository: repo, tokens: tokens, policy: policy, now: time.Now}
}

func (s *AuthService) CreateAccount(_ context.Context, email, password string) (domain.AuthSession, error) {
	if !s.policy.EmailPassword {
		return domain.AuthSession{}, errors.ErrOperationNotAllowed
	}

	// 1. Validate before any expensive cryptographic operation
	if err := auth.ValidateRegister(auth.RegisterRequest{Email: email, Password: password}); err != nil {
		return domain.AuthSession{}, err
	}

	// 2. Hash here so the repository never sees plain passwords
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("hashing failed: %w", err)
	}

	user := repositories.User{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(email),
		PasswordHash: hashedPassword,
		CreatedAt:    s.now().UTC(),
	}
	// 3. Propagates ErrEmailAlreadyInUse when the email is taken
	if err := s.userRepository.CreateUser(user); err != nil {
		return domain.AuthSession{}, err
	}
	s.log.Info("Account created", "user_id", user.ID)

	return s.issue(user)
}

func (s *AuthService) SignInWithPassword(_ context.Context, email, password string) (domain.AuthSession, error) {
	if !s.policy.EmailPassword {
		return domain.AuthSession{}, errors.ErrOperationNotAllowed
	}
	if err := auth.ValidateEmail(email); err != nil {
		return domain.AuthSession{}, err
	}

	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return domain.AuthSession{}, errors.ErrInvalidCredentials
		}
		return domain.AuthSession{}, err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return domain.AuthSession{}, errors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) UpdateProfile(_ context.Context, userID, displayName string) (domain.Identity, error) {
	user, err := s.userRepository.UpdateDisplayName(userID, strings.TrimSpace(displayName))
	if err != nil {
		return domain.Identity{}, err
	}
	return toIdentity(user), nil
}

func (s *AuthService) SignInAnonymously(_ context.Context) (domain.AuthSession, error) {
	if !s.policy.Anonymous {
		return domain.AuthSession{}, errors.ErrOperationNotAllowed
	}
	user := repositories.User{ID: uuid.NewString(), Anonymous: true, CreatedAt: s.now().UTC()}
	if err := s.userRepository.CreateUser(user); err != nil {
		return domain.AuthSession{}, err
	}
	s.log.Info("Anonymous account created", "user_id", user.ID)
	return s.issue(user)
}

// SignInWithCustomToken exchanges a minted token for a session. The
// account behind the token is created on first use.
func (s *AuthService) SignInWithCustomToken(_ context.Context, customToken string) (domain.AuthSession, error) {
	claims, err := s.tokens.ValidateToken(customToken, auth.KindCustom)
	if err != nil {
		s.log.Debug("Custom token rejected", "error", err)
		return domain.AuthSession{}, errors.ErrInvalidCustomToken
	}

	user, err := s.userRepository.GetUserByID(claims.UserID)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		user = repositories.User{ID: claims.UserID, CreatedAt: s.now().UTC()}
		err = s.userRepository.CreateUser(user)
	}
	if err != nil {
		return domain.AuthSession{}, err
	}
	return s.issue(user)
}

// VerifySession resolves the identity behind a session token.
func (s *AuthService) VerifySession(_ context.Context, token string) (domain.Identity, error) {
	claims, err := s.tokens.ValidateToken(token, auth.KindSession)
	if err != nil {
		return domain.Identity{}, errors.ErrUnauthenticated
	}
	user, err := s.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return domain.Identity{}, errors.ErrUnauthenticated
	}
	return toIdentity(user), nil
}

func (s *AuthService) issue(user repositories.User) (domain.AuthSession, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Anonymous)
	if err != nil {
		return domain.AuthSession{}, errors.ErrTokenGeneration
	}
	return domain.AuthSession{Token: token, Identity: toIdentity(user)}, nil
}

func toIdentity(user repositories.User) domain.Identity {
	return domain.Identity{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		IsAnonymous: user.Anonymous,
	}
}
