package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds. Session tokens authorize calls, custom tokens are minted
// out of band and exchanged once for a session.
const (
	KindSession = "session"
	KindCustom  = "custom"
)

const defaultIssuer = "talk"

var ErrTokenKind = errors.New("unexpected token kind")

// CustomClaims defines the data stored inside the JWT.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
	Anonymous bool   `json:"anonymous,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
	issuer   string
}

func NewTokenIssuer(secret string, duration time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("missing token secret")
	}
	if duration <= 0 {
		return nil, errors.New("invalid token duration")
	}
	return &TokenIssuer{secret: []byte(secret), duration: duration, issuer: defaultIssuer}, nil
}

// GenerateToken creates a signed session token for a user.
func (t *TokenIssuer) GenerateToken(userID string, anonymous bool) (string, error) {
	return t.sign(userID, KindSession, anonymous, t.duration)
}

// GenerateCustomToken creates a token meant for sign-in-with-custom-token.
func (t *TokenIssuer) GenerateCustomToken(userID string, validity time.Duration) (string, error) {
	return t.sign(userID, KindCustom, false, validity)
}

func (t *TokenIssuer) sign(userID, kind string, anonymous bool, validity time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("missing user id")
	}
	now := time.Now()
	claims := &CustomClaims{
		UserID:    userID,
		Kind:      kind,
		Anonymous: anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    t.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// ValidateToken parses a token of the expected kind and checks signature and expiry.
func (t *TokenIssuer) ValidateToken(tokenString, kind string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.Kind != kind {
		return nil, ErrTokenKind
	}
	return claims, nil
}
