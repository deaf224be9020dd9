package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It checks admin credentials through a CredentialService and issues
// HS256 session tokens with the "admin" audience.
type authService struct {
	// credentials verifies the admin username and password.
	credentials CredentialService

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	clock Clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentials CredentialService, cfg config.App, clock Clock, logger *logger.Logger) AuthService {
	return &authService{
		credentials:     credentials,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		clock:           clock,
		logger:          logger,
	}
}

// Login authenticates the admin and issues a session.
//
// Returns:
//   - ErrValidation if the username or password is empty.
//   - ErrInvalidCredentials for a wrong username or password. Which one was
//     wrong is not revealed.
//   - A wrapped error if the credentials cannot be read or the session
//     cannot be signed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if req.Username == "" || req.Password == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	if err := a.credentials.VerifyAdmin(ctx, req.Username, req.Password); err != nil {
		return models.Session{}, err
	}

	session, err := a.CreateSession(ctx, req.Username)
	if err != nil {
		return models.Session{}, err
	}

	logger.FromContext(ctx).Info().Str("username", req.Username).Msg("admin logged in")
	return session, nil
}

// CreateSession issues a signed session token for username that expires
// after sessionDuration.
func (a *authService) CreateSession(ctx context.Context, username string) (models.Session, error) {
	issuedAt := a.clock.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(a.sessionDuration)

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.tokenIssuer,
			Subject:   username,
			Audience:  jwt.ClaimStrings{models.AudienceAdmin},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := utils.SignJWT(claims, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateSession").Msg("error signing session")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	return models.Session{
		Username:     username,
		ExpiresAt:    expiresAt,
		SignedString: signed,
	}, nil
}

// ParseSession validates a session token.
//
// Any validation failure (expired, wrong issuer or audience, malformed) is
// normalised to ErrUnauthenticated so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrUnauthenticated
	}

	var claims models.SessionClaims
	err := utils.ParseJWT(token, &claims, utils.JWTParams{
		SignKey:  a.tokenSignKey,
		Issuer:   a.tokenIssuer,
		Audience: models.AudienceAdmin,
		Now:      a.clock,
	})
	if err != nil || claims.Subject == "" {
		logger.FromContext(ctx).Debug().Err(err).Msg("session rejected")
		return models.Session{}, ErrUnauthenticated
	}

	return models.Session{
		Username:     claims.Subject,
		ExpiresAt:    claims.ExpiresAt.UTC(),
		SignedString: token,
	}, nil
}
