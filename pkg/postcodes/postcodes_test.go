package postcodes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(`{"status": 200, "result": {"postcode": "SW1A 1AA", "latitude": 51.501009, "longitude": -0.141588}}`))
	}))
	defer server.Close()

	resolver := NewResolver()
	resolver.BaseURL = server.URL

	coordinate, err := resolver.Resolve(context.Background(), "SW1A 1AA")
	require.NoError(t, err)

	assert.Equal(t, "/postcodes/SW1A 1AA", requestedPath)
	assert.Equal(t, 51.501009, coordinate.Latitude)
	assert.Equal(t, -0.141588, coordinate.Longitude)
}

func TestResolveNotFound(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts += 1
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := NewResolver()
	resolver.BaseURL = server.URL

	_, err := resolver.Resolve(context.Background(), "ZZ99 9ZZ")
	assert.ErrorIs(t, err, ErrNotFound)

	// Unknown postcodes are permanent failures and must not be retried
	assert.Equal(t, 1, attempts)
}

func TestResolveRetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts += 1
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Write([]byte(`{"status": 200, "result": {"latitude": 51.5, "longitude": -0.1}}`))
	}))
	defer server.Close()

	resolver := NewResolver()
	resolver.BaseURL = server.URL

	coordinate, err := resolver.Resolve(context.Background(), "SW1A 1AA")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 51.5, coordinate.Latitude)
}
