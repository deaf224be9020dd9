package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuthAttempt(t *testing.T) {
	before := testutil.ToFloat64(AuthAttempts.WithLabelValues("login", "false"))

	RecordAuthAttempt("login", false)

	assert.Equal(t, before+1, testutil.ToFloat64(AuthAttempts.WithLabelValues("login", "false")))
}

func TestRecordNotification(t *testing.T) {
	before := testutil.ToFloat64(Notifications.WithLabelValues("email", ResultFailed))

	RecordNotification("email", ResultFailed)
	RecordNotification("email", ResultFailed)

	assert.Equal(t, before+2, testutil.ToFloat64(Notifications.WithLabelValues("email", ResultFailed)))
}
