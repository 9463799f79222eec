package auth

import (
	"time"

	"blog/config"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultAccessTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret    []byte        // Process-wide signing key, read once at startup.
	accessTTL time.Duration // Lifetime used when callers pass no ttl.
	leeway    time.Duration // Tolerated clock skew when checking exp.
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: defaultAccessTTL,
		now:       time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.ClockSkewLeeway > 0 {
			svc.leeway = cfg.Auth.ClockSkewLeeway
		}
	}

	return svc, nil
}

// Issue signs a token carrying sub, iat and exp.
func (s *jwtService) Issue(subject string, ttl time.Duration) (*entity.AccessToken, error) {
	if subject == "" {
		return nil, errors.New("token subject must not be empty")
	}
	if ttl <= 0 {
		ttl = s.accessTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &entity.AccessToken{
		Value:     signed,
		TokenType: entity.TokenTypeBearer,
		Subject:   subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify parses tokenString and maps jwt failures onto the domain token errors.
// The HMAC comparison inside jwt uses hmac.Equal, which is constant time.
func (s *jwtService) Verify(tokenString string) (*entity.Principal, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenMalformed, "token has no subject")
	}

	principal := &entity.Principal{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}

	return principal, nil
}

// keyFunc only hands out the secret for HS256. Any other alg, including
// "none", surfaces as an unverifiable and therefore malformed token.
func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
	}

	return s.secret, nil
}

// DefaultTTL returns the configured duration for access tokens.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.accessTTL
}

// classifyTokenError checks signature before expiry: a forged token that also
// happens to be expired must still report a bad signature.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Wrap(domainerrors.ErrTokenBadSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(domainerrors.ErrTokenMalformed, err.Error())
	}
}
