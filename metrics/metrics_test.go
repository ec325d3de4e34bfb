package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency/metrics"
)

func TestMetrics(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	m := metrics.NewMetrics()

	m.Lookup(metrics.LookupHit)
	m.Lookup(metrics.LookupHit)
	m.Fetch(metrics.FetchError)
	m.Conversion()

	asserts.Equal(2.0, testutil.ToFloat64(m.RateLookupsTotal.WithLabelValues(metrics.LookupHit)))
	asserts.Equal(1.0, testutil.ToFloat64(m.RateFetchesTotal.WithLabelValues(metrics.FetchError)))
	asserts.Equal(1.0, testutil.ToFloat64(m.ConversionsTotal))

	file := filepath.Join(t.TempDir(), "curr.prom")
	asserts.Nil(m.WriteToTextfile(file))

	content, err := os.ReadFile(file)
	asserts.Nil(err)
	asserts.Contains(string(content), `curr_rate_lookups_total{result="hit"} 2`)
}

func TestMetrics_NilReceiver(t *testing.T) {
	t.Parallel()
	var m *metrics.Metrics

	require.NotPanics(t, func() {
		m.Lookup(metrics.LookupMiss)
		m.Fetch(metrics.FetchOK)
		m.Conversion()
	})
}
