package service

import (
	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/internal/validators"
	"github.com/MKhiriev/go-table-order/models"
)

type Services struct {
	TokenService        TokenService
	GeofenceService     GeofenceService
	CredentialService   CredentialService
	AuthService         AuthService
	AdminService        AdminService
	OrderSessionService OrderSessionService
	OrderService        OrderService
	AppInfoService      AppInfoService
}

func NewServices(stateStore store.StateStore, notifier OrderNotifier, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokens := NewTokenService(cfg.App, nil, logger)
	geofence := NewGeofenceService(cfg.Venue)
	credentials := NewCredentialService(stateStore, cfg.App, logger)

	return &Services{
		TokenService:      tokens,
		GeofenceService:   geofence,
		CredentialService: credentials,
		AuthService:       NewAuthService(credentials, cfg.App, nil, logger),
		AdminService:      NewAdminService(stateStore, tokens, cfg.App, logger),
		OrderSessionService: NewOrderSessionService(OrderSessionDeps{
			Tokens:      tokens,
			Geofence:    geofence,
			Credentials: credentials,
			Store:       stateStore,
			IDs:         utils.NewUUIDGenerator(),
			Notifier:    notifier,
			Validator:   validators.NewRequestValidator(),
			AdminBypass: !cfg.Venue.DisableAdminBypass,
		}, logger),
		OrderService:   NewOrderService(stateStore, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
