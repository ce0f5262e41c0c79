package google

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	domainerrors "ruteando/internal/domain/errors"
	"ruteando/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultRoutesURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

	// routesFieldMask limits the response to the fields the planner consumes.
	routesFieldMask = "routes.distanceMeters,routes.duration,routes.polyline.encodedPolyline,routes.legs"
)

type routesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRoutesClient creates a RoutePlanner backed by the Google Routes API.
// baseURL may be empty to use the production endpoint.
func NewRoutesClient(apiKey, baseURL string, httpClient *http.Client, logger *slog.Logger) service.RoutePlanner {
	if baseURL == "" {
		baseURL = defaultRoutesURL
	}

	return &routesClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type computeRoutesRequest struct {
	Origin            waypoint   `json:"origin"`
	Destination       waypoint   `json:"destination"`
	Intermediates     []waypoint `json:"intermediates,omitempty"`
	TravelMode        string     `json:"travelMode"`
	RoutingPreference string     `json:"routingPreference"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters float64 `json:"distanceMeters"`
		Duration       string  `json:"duration"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
		Legs []struct {
			DistanceMeters float64 `json:"distanceMeters"`
			Duration       string  `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func newWaypoint(p orb.Point) waypoint {
	var w waypoint
	w.Location.LatLng = latLng{Latitude: p.Lat(), Longitude: p.Lon()}

	return w
}

// ComputeRoute requests a traffic-aware driving path through the given points,
// in order. The first point is the origin and the last the destination.
func (c *routesClient) ComputeRoute(ctx context.Context, points []orb.Point) (*service.PlannedRoute, error) {
	if len(points) < 2 {
		return nil, domainerrors.ErrNotEnoughUniquePoints
	}

	request := computeRoutesRequest{
		Origin:            newWaypoint(points[0]),
		Destination:       newWaypoint(points[len(points)-1]),
		TravelMode:        "DRIVE",
		RoutingPreference: "TRAFFIC_AWARE",
	}
	for _, p := range points[1 : len(points)-1] {
		request.Intermediates = append(request.Intermediates, newWaypoint(p))
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrPlannerUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrPlannerUnavailable.WrapMessage(err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("routes request rejected",
			slog.Int("status_code", resp.StatusCode),
		)

		return nil, domainerrors.ErrPlannerUnavailable.WithDetails(resp.Status)
	}

	var parsed computeRoutesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domainerrors.ErrPlannerUnavailable.WrapMessage(err.Error())
	}

	if len(parsed.Routes) == 0 {
		return nil, domainerrors.ErrNoRouteFound
	}

	route := parsed.Routes[0]
	planned := &service.PlannedRoute{
		TotalDistanceM:  route.DistanceMeters,
		TotalDurationS:  parseDurationSeconds(route.Duration),
		EncodedPolyline: route.Polyline.EncodedPolyline,
		Legs:            make([]service.PlannedLeg, 0, len(route.Legs)),
	}
	for _, leg := range route.Legs {
		planned.Legs = append(planned.Legs, service.PlannedLeg{
			DistanceM: leg.DistanceMeters,
			DurationS: parseDurationSeconds(leg.Duration),
		})
	}

	return planned, nil
}

// parseDurationSeconds converts the API's "3600s" duration format to seconds.
func parseDurationSeconds(s string) float64 {
	trimmed := strings.TrimSuffix(s, "s")
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}

	return seconds
}
