package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-order/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// TokenService issues and verifies table tokens.
type TokenService interface {
	// IssueTableToken signs a token for tableID. ttl <= 0 uses the
	// configured default.
	IssueTableToken(ctx context.Context, tableID models.TableID, ttl time.Duration) (models.TableToken, error)
	// VerifyTableToken returns the decoded token or ErrInvalidToken.
	VerifyTableToken(ctx context.Context, token string) (models.TableToken, error)
}

// GeofenceService decides whether a coordinate is inside the venue.
type GeofenceService interface {
	Check(lat, lng float64) models.GeofenceResult
}

// CredentialService owns the admin password and the table PINs.
type CredentialService interface {
	// Provision creates the admin account when missing and hashes every
	// plaintext secret in the snapshot.
	Provision(ctx context.Context) error
	VerifyAdmin(ctx context.Context, username, password string) error
	VerifyTablePin(ctx context.Context, tableID models.TableID, pin string) error
	SaveTable(ctx context.Context, req models.SaveTableRequest) (models.TableView, error)
	ListTables(ctx context.Context) ([]models.TableView, error)
}

// AuthService manages admin sessions.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	CreateSession(ctx context.Context, username string) (models.Session, error)
	// ParseSession returns the session or ErrUnauthenticated.
	ParseSession(ctx context.Context, token string) (models.Session, error)
}

// AdminService holds admin-only operations on tables.
type AdminService interface {
	// GenerateQR returns the customer link for tableID. baseURL is used
	// when no public base URL is configured.
	GenerateQR(ctx context.Context, tableID models.TableID, baseURL string) (string, error)
}

// OrderSessionService is the customer flow: location, PIN, order.
type OrderSessionService interface {
	// ValidateLocation checks the geofence. admin is the caller's session,
	// nil for customers.
	ValidateLocation(ctx context.Context, req models.LocationRequest, admin *models.Session) (models.LocationResult, error)
	// ValidatePin reports whether the PIN unlocks the token's table. Only
	// storage failures are returned as errors.
	ValidatePin(ctx context.Context, req models.PinRequest) (bool, error)
	SubmitOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
}

// OrderService reads the order history.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	Summary(ctx context.Context) ([]models.ItemSummary, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// OrderNotifier is told about every accepted order together with the full
// order list after it was appended. Implementations must not block.
type OrderNotifier interface {
	OrderAccepted(ctx context.Context, order models.Order, orders []models.Order)
}

// IDGenerator produces unique order ids.
type IDGenerator interface {
	Generate() string
}
