package config

import "time"

// Defaults applied by the builder to fields no source has set.
const (
	DefaultHTTPAddress     = ":3000"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultOrderRateLimit  = 20
	DefaultOrderRateWindow = 60 * time.Second
	DefaultLoginRateLimit  = 10
	DefaultLoginRateWindow = time.Minute

	DefaultTokenIssuer        = "go-table-order"
	DefaultSessionDuration    = 8 * time.Hour
	DefaultTableTokenDuration = 8 * time.Hour
	DefaultAdminUsername      = "admin"
	DefaultBcryptCost         = 10

	DefaultDataFile = "./data.json"

	DefaultVenueLatitude     = 19.0760
	DefaultVenueLongitude    = 72.8777
	DefaultVenueRadiusMeters = 100.0

	DefaultNotifyTimeout   = 10 * time.Second
	DefaultSMTPPort        = 587
	DefaultAMQPExchange    = "orders"
	DefaultNotifyQueueSize = 64

	DefaultLogLevel = "info"
)

// MinBcryptCost is the lowest accepted bcrypt cost.
const MinBcryptCost = 10
