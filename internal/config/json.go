package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations written as strings ("8h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		TableTokenDuration Duration `json:"table_token_duration"`
		AdminUsername      string   `json:"admin_username"`
		AdminPassword      string   `json:"admin_password"`
		BcryptCost         int      `json:"bcrypt_cost"`
		PublicBaseURL      string   `json:"public_base_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DataFile string `json:"data_file"`
		DB       struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		OrderRateLimit  int      `json:"order_rate_limit"`
		OrderRateWindow Duration `json:"order_rate_window"`
		LoginRateLimit  int      `json:"login_rate_limit"`
		LoginRateWindow Duration `json:"login_rate_window"`
		SecureCookies   bool     `json:"secure_cookies"`
		Development     bool     `json:"development"`
	} `json:"server,omitempty"`

	Venue struct {
		Latitude           *float64 `json:"latitude"`
		Longitude          *float64 `json:"longitude"`
		RadiusMeters       float64  `json:"radius_meters"`
		DisableAdminBypass bool     `json:"disable_admin_bypass"`
	} `json:"venue,omitempty"`

	Notify struct {
		Email string `json:"email"`
		SMTP  struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			From     string `json:"from"`
		} `json:"smtp,omitempty"`
		WebhookURL string `json:"webhook_url"`
		AMQP       struct {
			URL      string `json:"url"`
			Exchange string `json:"exchange"`
		} `json:"amqp,omitempty"`
		Timeout Duration `json:"timeout"`
	} `json:"notify,omitempty"`

	Workers struct {
		NotifyQueueSize int `json:"notify_queue_size"`
	} `json:"workers,omitempty"`

	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	j := &jsonCfg
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       j.App.TokenSignKey,
			TokenIssuer:        j.App.TokenIssuer,
			SessionDuration:    time.Duration(j.App.SessionDuration),
			TableTokenDuration: time.Duration(j.App.TableTokenDuration),
			AdminUsername:      j.App.AdminUsername,
			AdminPassword:      j.App.AdminPassword,
			BcryptCost:         j.App.BcryptCost,
			PublicBaseURL:      j.App.PublicBaseURL,
		},
		Storage: Storage{
			DataFile: j.Storage.DataFile,
			DB:       DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			OrderRateLimit:  j.Server.OrderRateLimit,
			OrderRateWindow: time.Duration(j.Server.OrderRateWindow),
			LoginRateLimit:  j.Server.LoginRateLimit,
			LoginRateWindow: time.Duration(j.Server.LoginRateWindow),
			SecureCookies:   j.Server.SecureCookies,
			Development:     j.Server.Development,
		},
		Venue: Venue{
			Latitude:           j.Venue.Latitude,
			Longitude:          j.Venue.Longitude,
			RadiusMeters:       j.Venue.RadiusMeters,
			DisableAdminBypass: j.Venue.DisableAdminBypass,
		},
		Notify: Notify{
			Email: j.Notify.Email,
			SMTP: SMTP{
				Host:     j.Notify.SMTP.Host,
				Port:     j.Notify.SMTP.Port,
				Username: j.Notify.SMTP.Username,
				Password: j.Notify.SMTP.Password,
				From:     j.Notify.SMTP.From,
			},
			WebhookURL: j.Notify.WebhookURL,
			AMQP: AMQP{
				URL:      j.Notify.AMQP.URL,
				Exchange: j.Notify.AMQP.Exchange,
			},
			Timeout: time.Duration(j.Notify.Timeout),
		},
		Workers: Workers{
			NotifyQueueSize: j.Workers.NotifyQueueSize,
		},
		LogLevel: j.LogLevel,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
