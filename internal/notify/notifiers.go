package notify

import (
	"errors"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
)

// NewStaffNotifiers builds every notifier the configuration enables.
// Unconfigured channels are skipped; a channel that is configured but
// cannot be set up is an error.
func NewStaffNotifiers(cfg config.Notify, logger *logger.Logger) ([]StaffNotifier, error) {
	var notifiers []StaffNotifier

	email, err := NewEmailNotifier(cfg, logger)
	switch {
	case err == nil:
		notifiers = append(notifiers, email)
	case !errors.Is(err, ErrNotifierNotConfigured):
		return nil, err
	}

	webhook, err := NewWebhookNotifier(cfg.WebhookURL, cfg.Timeout)
	switch {
	case err == nil:
		notifiers = append(notifiers, webhook)
	case !errors.Is(err, ErrNotifierNotConfigured):
		return nil, err
	}

	kitchen, err := NewAMQPNotifier(cfg.AMQP, logger)
	switch {
	case err == nil:
		notifiers = append(notifiers, kitchen)
	case !errors.Is(err, ErrNotifierNotConfigured):
		closeAll(notifiers)
		return nil, err
	}

	for _, n := range notifiers {
		logger.Info().Str("channel", n.Name()).Msg("staff notifier enabled")
	}
	return notifiers, nil
}

func closeAll(notifiers []StaffNotifier) {
	for _, n := range notifiers {
		_ = n.Close()
	}
}
