package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs table tokens as HS256 JWTs with the "table" audience.
type tokenService struct {
	signKey    string
	issuer     string
	defaultTTL time.Duration
	clock      Clock

	logger *logger.Logger
}

// NewTokenService builds a TokenService from the app configuration.
func NewTokenService(cfg config.App, clock Clock, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:    cfg.TokenSignKey,
		issuer:     cfg.TokenIssuer,
		defaultTTL: cfg.TableTokenDuration,
		clock:      clock,
		logger:     logger,
	}
}

func (s *tokenService) IssueTableToken(ctx context.Context, tableID models.TableID, ttl time.Duration) (models.TableToken, error) {
	if tableID <= 0 {
		return models.TableToken{}, fmt.Errorf("%w: table id must be positive", ErrValidation)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	// JWT dates have second precision
	issuedAt := s.clock.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	claims := &models.TableClaims{
		TableID: tableID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   tableID.String(),
			Audience:  jwt.ClaimStrings{models.AudienceTable},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := utils.SignJWT(claims, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.IssueTableToken").Msg("error signing table token")
		return models.TableToken{}, fmt.Errorf("error signing table token: %w", err)
	}

	return models.TableToken{
		TableID:      tableID,
		IssuedAt:     issuedAt,
		ExpiresAt:    expiresAt,
		SignedString: signed,
	}, nil
}

func (s *tokenService) VerifyTableToken(ctx context.Context, token string) (models.TableToken, error) {
	if token == "" {
		return models.TableToken{}, ErrInvalidToken
	}

	var claims models.TableClaims
	err := utils.ParseJWT(token, &claims, utils.JWTParams{
		SignKey:  s.signKey,
		Issuer:   s.issuer,
		Audience: models.AudienceTable,
		Now:      s.clock,
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("table token rejected")
		return models.TableToken{}, ErrInvalidToken
	}

	if claims.TableID <= 0 || claims.Subject != claims.TableID.String() {
		logger.FromContext(ctx).Debug().Err(errors.New("subject mismatch")).Msg("table token rejected")
		return models.TableToken{}, ErrInvalidToken
	}

	tok := models.TableToken{TableID: claims.TableID}
	if claims.IssuedAt != nil {
		tok.IssuedAt = claims.IssuedAt.UTC()
	}
	tok.ExpiresAt = claims.ExpiresAt.UTC()
	return tok, nil
}
