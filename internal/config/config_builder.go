package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.applyDefaults(); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	return config, config.validate()
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(dotEnvFile); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// applyDefaults fills every field no source has set.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Server.HTTPAddress == "" {
		if cfg.Port > 0 {
			cfg.Server.HTTPAddress = ":" + strconv.Itoa(cfg.Port)
		} else {
			cfg.Server.HTTPAddress = DefaultHTTPAddress
		}
	}
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setDefault(&cfg.Server.OrderRateLimit, DefaultOrderRateLimit)
	setDefault(&cfg.Server.OrderRateWindow, DefaultOrderRateWindow)
	setDefault(&cfg.Server.LoginRateLimit, DefaultLoginRateLimit)
	setDefault(&cfg.Server.LoginRateWindow, DefaultLoginRateWindow)

	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.SessionDuration, DefaultSessionDuration)
	setDefault(&cfg.App.TableTokenDuration, DefaultTableTokenDuration)
	setDefault(&cfg.App.AdminUsername, DefaultAdminUsername)
	setDefault(&cfg.App.BcryptCost, DefaultBcryptCost)

	if cfg.App.TokenSignKey == "" {
		key, err := randomKey(32)
		if err != nil {
			return err
		}
		cfg.App.TokenSignKey = key
		cfg.App.SignKeyGenerated = true
	}

	setDefault(&cfg.Storage.DataFile, DefaultDataFile)

	if cfg.Venue.Latitude == nil {
		lat := DefaultVenueLatitude
		cfg.Venue.Latitude = &lat
	}
	if cfg.Venue.Longitude == nil {
		lng := DefaultVenueLongitude
		cfg.Venue.Longitude = &lng
	}
	setDefault(&cfg.Venue.RadiusMeters, DefaultVenueRadiusMeters)

	setDefault(&cfg.Notify.Timeout, DefaultNotifyTimeout)
	setDefault(&cfg.Notify.SMTP.Port, DefaultSMTPPort)
	setDefault(&cfg.Notify.SMTP.From, cfg.Notify.SMTP.Username)
	setDefault(&cfg.Notify.AMQP.Exchange, DefaultAMQPExchange)
	setDefault(&cfg.Workers.NotifyQueueSize, DefaultNotifyQueueSize)

	setDefault(&cfg.LogLevel, DefaultLogLevel)

	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

func randomKey(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token sign key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
