package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ruteando/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRoutesClient_ComputeRoute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, routesFieldMask, r.Header.Get("X-Goog-FieldMask"))

		var request computeRoutesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.InDelta(t, -34.6037, request.Origin.Location.LatLng.Latitude, 0.0001)
		assert.InDelta(t, -34.6158, request.Destination.Location.LatLng.Latitude, 0.0001)
		require.Len(t, request.Intermediates, 1)
		assert.Equal(t, "DRIVE", request.TravelMode)

		_, _ = w.Write([]byte(`{
			"routes": [{
				"distanceMeters": 4200,
				"duration": "900s",
				"polyline": {"encodedPolyline": "abc123"},
				"legs": [
					{"distanceMeters": 2500, "duration": "540s"},
					{"distanceMeters": 1700, "duration": "360s"}
				]
			}]
		}`))
	}))
	defer server.Close()

	client := NewRoutesClient("test-key", server.URL, server.Client(), testLogger())

	planned, err := client.ComputeRoute(context.Background(), []orb.Point{
		{-58.3816, -34.6037},
		{-58.3702, -34.6083},
		{-58.3731, -34.6158},
	})
	require.NoError(t, err)

	assert.InDelta(t, 4200, planned.TotalDistanceM, 0.01)
	assert.InDelta(t, 900, planned.TotalDurationS, 0.01)
	assert.Equal(t, "abc123", planned.EncodedPolyline)
	require.Len(t, planned.Legs, 2)
	assert.InDelta(t, 2500, planned.Legs[0].DistanceM, 0.01)
	assert.InDelta(t, 360, planned.Legs[1].DurationS, 0.01)
}

func TestRoutesClient_ComputeRoute_TooFewPoints(t *testing.T) {
	client := NewRoutesClient("test-key", "http://unused", http.DefaultClient, testLogger())

	planned, err := client.ComputeRoute(context.Background(), []orb.Point{{-58.3816, -34.6037}})
	assert.Nil(t, planned)
	assert.Equal(t, domainerrors.ErrNotEnoughUniquePoints, err)
}

func TestRoutesClient_ComputeRoute_NoRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"routes": []}`))
	}))
	defer server.Close()

	client := NewRoutesClient("test-key", server.URL, server.Client(), testLogger())

	planned, err := client.ComputeRoute(context.Background(), []orb.Point{
		{-58.3816, -34.6037},
		{-58.3731, -34.6158},
	})
	assert.Nil(t, planned)
	assert.Equal(t, domainerrors.ErrNoRouteFound, err)
}

func TestRoutesClient_ComputeRoute_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRoutesClient("test-key", server.URL, server.Client(), testLogger())

	planned, err := client.ComputeRoute(context.Background(), []orb.Point{
		{-58.3816, -34.6037},
		{-58.3731, -34.6158},
	})
	assert.Nil(t, planned)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PLANNER_UNAVAILABLE", appErr.ErrorCode())
}

func TestParseDurationSeconds(t *testing.T) {
	assert.InDelta(t, 3600, parseDurationSeconds("3600s"), 0.01)
	assert.InDelta(t, 12.5, parseDurationSeconds("12.5s"), 0.01)
	assert.InDelta(t, 0, parseDurationSeconds("invalid"), 0.01)
}
