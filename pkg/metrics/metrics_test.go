package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("consult", prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/api/v1/time-grid", 200, 10*time.Millisecond)
	m.IncBookingTransition("confirmed")
	m.IncBookingTransition("confirmed")
	m.IncNotification("failed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/time-grid", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingTransitionsTotal.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("failed")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Second)
		m.ObserveQuery("select", time.Second)
		m.IncBookingTransition("pending")
		m.IncNotification("sent")
	})
}
