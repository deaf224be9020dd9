package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
	"github.com/go-resty/resty/v2"
)

const csrfHeader = "X-CSRF-Token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu        sync.Mutex
	csrfToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises and validates baseURL and configures the underlying client
// with the request timeout. Cookies are kept in the client's jar.
func NewHTTPServerAdapter(baseURL string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(timeout)
	client.SetBaseURL(normalized)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("username", username).Msg("logged in")
	return nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	h.mu.Lock()
	h.csrfToken = ""
	h.mu.Unlock()

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	var me models.MeResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&me).Get("/api/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return me, nil
}

func (h *httpServerAdapter) ListTables(ctx context.Context) ([]models.TableView, error) {
	var result models.DataResponse[models.TableView]

	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/api/admin/tables")
	if err != nil {
		return nil, fmt.Errorf("list tables request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) SaveTable(ctx context.Context, req models.SaveTableRequest) error {
	r, err := h.mutatingRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := r.SetBody(req).Post("/api/admin/tables")
	if err != nil {
		return fmt.Errorf("save table request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GenerateQR(ctx context.Context, tableID models.TableID) (string, error) {
	r, err := h.mutatingRequest(ctx)
	if err != nil {
		return "", err
	}

	var result models.QRResponse
	resp, err := r.
		SetBody(models.GenerateQRRequest{TableID: tableID}).
		SetResult(&result).
		Post("/api/admin/generate-qr")
	if err != nil {
		return "", fmt.Errorf("generate QR request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.QRURL, nil
}

func (h *httpServerAdapter) Summary(ctx context.Context) ([]models.ItemSummary, error) {
	var result models.DataResponse[models.ItemSummary]

	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/api/orders/summary")
	if err != nil {
		return nil, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (VersionInfo, error) {
	var info VersionInfo

	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return VersionInfo{}, err
	}

	return info, nil
}

// mutatingRequest returns a request carrying the CSRF header, fetching the
// token on first use.
func (h *httpServerAdapter) mutatingRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.csrf(ctx)
	if err != nil {
		return nil, err
	}

	return h.client.R().SetContext(ctx).SetHeader(csrfHeader, token), nil
}

func (h *httpServerAdapter) csrf(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.csrfToken != "" {
		return h.csrfToken, nil
	}

	var result models.CSRFResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/api/admin/csrf-token")
	if err != nil {
		return "", fmt.Errorf("csrf token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.csrfToken = result.CSRFToken
	return h.csrfToken, nil
}
