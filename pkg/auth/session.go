package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

// DefaultSessionTTL is the default lifetime of a session token.
const DefaultSessionTTL = 8 * time.Hour

// SessionConfig holds session token configuration.
type SessionConfig struct {
	TTL    time.Duration
	Secret []byte
	Issuer string
}

// SessionClaims is the payload of a signed session token. It is the sole
// source of truth for a request's identity; no database lookup happens at
// verification time, so a revoked or demoted user stays valid until expiry.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId"`
}

// Identity is the authenticated principal exposed to downstream handlers.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Role      domain.Role
	CompanyID uuid.UUID
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// Identity decodes the claims into an Identity value.
func (c *SessionClaims) Identity() (Identity, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}

	companyID, err := uuid.Parse(c.CompanyID)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}

	role := domain.Role(c.Role)
	if !role.Valid() {
		return Identity{}, domain.ErrInvalidToken
	}

	return Identity{
		UserID:    userID,
		Email:     c.Email,
		Role:      role,
		CompanyID: companyID,
	}, nil
}

// SessionService signs and verifies session tokens.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new session service.
func NewSessionService(config SessionConfig) *SessionService {
	if config.TTL == 0 {
		config.TTL = DefaultSessionTTL
	}
	return &SessionService{config: config}
}

// TTL returns the configured session token lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Mint signs a session token for the given user.
func (s *SessionService) Mint(user *domain.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			Issuer:    s.config.Issuer,
		},
		Email:     user.Email,
		Role:      string(user.Role),
		CompanyID: user.CompanyID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.config.Secret)
}

// Verify checks a token's signature and expiry and returns its claims.
// The specific failure reason is for logging only and must not reach
// the client.
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.config.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
