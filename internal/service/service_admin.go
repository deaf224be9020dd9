package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/models"
)

// qrPath is the customer page the QR link opens.
const qrPath = "/index.html"

type adminService struct {
	store         store.StateStore
	tokens        TokenService
	publicBaseURL string

	logger *logger.Logger
}

// NewAdminService constructs an AdminService. A configured public base URL
// takes precedence over the one derived from the request.
func NewAdminService(stateStore store.StateStore, tokens TokenService, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		store:         stateStore,
		tokens:        tokens,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        logger,
	}
}

// GenerateQR issues a table token for a provisioned table and returns the
// link encoded into its QR code.
func (s *adminService) GenerateQR(ctx context.Context, tableID models.TableID, baseURL string) (string, error) {
	if tableID <= 0 {
		return "", fmt.Errorf("%w: tableId is required", ErrValidation)
	}

	snap, err := s.store.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading tables: %w", err)
	}
	if _, ok := snap.FindTable(tableID); !ok {
		return "", ErrTableNotFound
	}

	token, err := s.tokens.IssueTableToken(ctx, tableID, 0)
	if err != nil {
		return "", err
	}

	base := s.publicBaseURL
	if base == "" {
		base = baseURL
	}
	base = strings.TrimRight(base, "/")

	logger.FromContext(ctx).Info().
		Stringer("table_id", tableID).
		Time("expires_at", token.ExpiresAt).
		Msg("table token issued")

	return base + qrPath + "?token=" + url.QueryEscape(token.SignedString), nil
}
