package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ruteando/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodingClient_Geocode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Av. Corrientes 1234, Buenos Aires, CABA, Argentina", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": -34.6037, "lng": -58.3816}}}]
		}`))
	}))
	defer server.Close()

	client := NewGeocodingClient("test-key", server.URL, server.Client(), testLogger())

	result, err := client.Geocode(context.Background(), "Av. Corrientes 1234, Buenos Aires, CABA, Argentina")
	require.NoError(t, err)

	assert.InDelta(t, -34.6037, result.Latitude, 0.0001)
	assert.InDelta(t, -58.3816, result.Longitude, 0.0001)
	assert.Equal(t, ProviderName, result.Provider)
	assert.NotEmpty(t, result.RawResponse)
}

func TestGeocodingClient_Geocode_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewGeocodingClient("test-key", server.URL, server.Client(), testLogger())

	result, err := client.Geocode(context.Background(), "direccion inexistente")
	assert.Nil(t, result)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GEOCODING_FAILED", appErr.ErrorCode())
	assert.Equal(t, "ZERO_RESULTS", appErr.Details())
}

func TestGeocodingClient_Geocode_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewGeocodingClient("bad-key", server.URL, server.Client(), testLogger())

	result, err := client.Geocode(context.Background(), "cualquier direccion")
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GEOCODING_FAILED", appErr.ErrorCode())
}
