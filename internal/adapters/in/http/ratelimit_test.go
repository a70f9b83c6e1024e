package http_test

import (
	"testing"

	httpin "dronefleet/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
)

func TestClientRateLimiter_Allow(t *testing.T) {
	limiter := httpin.NewClientRateLimiter(0.001, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// buckets are per client
	assert.True(t, limiter.Allow("10.0.0.2"))
}
