package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAreExposed(t *testing.T) {
	m := New()
	m.RecordsAdded.WithLabelValues("bot").Inc()
	m.Logins.WithLabelValues("ok").Inc()
	m.Logins.WithLabelValues("ok").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Logins.WithLabelValues("ok")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `helpdesk_records_added_total{kind="bot"} 1`)
}
