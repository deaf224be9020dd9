// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.BcryptCost < MinBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d is below %d", ErrInvalidAppConfigs, cfg.App.BcryptCost, MinBcryptCost)
	}
	if cfg.App.SessionDuration <= 0 || cfg.App.TableTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PublicBaseURL != "" {
		u, err := url.Parse(cfg.App.PublicBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: public base url %q must be absolute", ErrInvalidAppConfigs, cfg.App.PublicBaseURL)
		}
	}

	if cfg.Server.OrderRateLimit <= 0 || cfg.Server.OrderRateWindow <= 0 ||
		cfg.Server.LoginRateLimit <= 0 || cfg.Server.LoginRateWindow <= 0 {
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidServerConfigs)
	}

	if lat := cfg.Venue.Latitude; lat == nil || *lat < -90 || *lat > 90 {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidVenueConfigs)
	}
	if lng := cfg.Venue.Longitude; lng == nil || *lng < -180 || *lng > 180 {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidVenueConfigs)
	}
	if cfg.Venue.RadiusMeters <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidVenueConfigs)
	}

	if cfg.Notify.Email != "" && cfg.Notify.SMTP.Host == "" {
		return fmt.Errorf("%w: staff email requires an SMTP host", ErrInvalidNotifyConfigs)
	}
	if cfg.Notify.Email != "" && cfg.Notify.SMTP.From == "" {
		return fmt.Errorf("%w: staff email requires an SMTP sender (FROM or USERNAME)", ErrInvalidNotifyConfigs)
	}

	if cfg.Workers.NotifyQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
