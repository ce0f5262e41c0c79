// Package google implements the geocoding and route planning gateways on top
// of the Google Maps Platform HTTP APIs.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultGeocodingURL = "https://maps.googleapis.com/maps/api/geocode/json"

	// ProviderName identifies cache entries produced by this gateway.
	ProviderName = "google"
)

type geocodingClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeocodingClient creates a Geocoder backed by the Google Geocoding API.
// baseURL may be empty to use the production endpoint.
func NewGeocodingClient(apiKey, baseURL string, httpClient *http.Client, logger *slog.Logger) service.Geocoder {
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}

	return &geocodingClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

type geocodingResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a formatted address to coordinates.
func (c *geocodingClient) Geocode(ctx context.Context, formattedAddress string) (*service.GeocodeResult, error) {
	query := url.Values{}
	query.Set("address", formattedAddress)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocoding request rejected",
			slog.Int("status_code", resp.StatusCode),
		)

		return nil, domainerrors.ErrGeocodingFailed.WithDetails(resp.Status)
	}

	var parsed geocodingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		c.logger.Warn("geocoding returned no usable result",
			slog.String("provider_status", parsed.Status),
		)

		return nil, domainerrors.ErrGeocodingFailed.WithDetails(parsed.Status)
	}

	location := parsed.Results[0].Geometry.Location

	return &service.GeocodeResult{
		Latitude:    location.Lat,
		Longitude:   location.Lng,
		Provider:    ProviderName,
		RawResponse: body,
	}, nil
}
