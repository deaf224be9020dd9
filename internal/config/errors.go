package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or credential settings
	// (for example, a bcrypt cost below the minimum).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener or rate-limit settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidVenueConfigs indicates coordinates out of range or a
	// non-positive radius.
	ErrInvalidVenueConfigs = errors.New("invalid venue configuration")
	// ErrInvalidNotifyConfigs indicates a half-configured notification
	// channel (for example, a staff email without an SMTP host).
	ErrInvalidNotifyConfigs = errors.New("invalid notify configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
