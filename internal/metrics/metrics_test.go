package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveConversion(t *testing.T) {
	before := testutil.ToFloat64(conversionsTotal.WithLabelValues("offramp", "completed"))

	ObserveConversion("offramp", "completed")

	after := testutil.ToFloat64(conversionsTotal.WithLabelValues("offramp", "completed"))
	assert.Equal(t, before+1, after)
}

func TestObserveProviderRequest_Labels(t *testing.T) {
	ObserveProviderRequest("create_payout_quote", 201, 10*time.Millisecond)
	ObserveProviderRequest("create_payout_quote", 0, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(providerRequestsTotal.WithLabelValues("create_payout_quote", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(providerRequestsTotal.WithLabelValues("create_payout_quote", "transport_error")))
}

func TestSetWatchedWallets(t *testing.T) {
	SetWatchedWallets(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(watchedWallets))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/conversions", "POST", "409"))

	ObserveHTTPRequest("/api/v1/conversions", "POST", 409, 2*time.Second)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/conversions", "POST", "409"))
	assert.Equal(t, before+1, after)
}
