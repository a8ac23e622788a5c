// Package geocode resolves GPS coordinates to place names. The primary
// implementation talks to a Nominatim instance; a Redis decorator keeps the
// hot delivery corridors from hammering it.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
)

const defaultRequestTimeout = 5 * time.Second

// NominatimGeocoder implements ports.Geocoder against the Nominatim reverse
// endpoint.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder creates a reverse geocoder for the given Nominatim
// base URL. Nominatim's usage policy requires an identifying User-Agent.
func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

type nominatimResponse struct {
	Error       string `json:"error"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Country  string `json:"country"`
		Province string `json:"province"`
		State    string `json:"state"`
		City     string `json:"city"`
		Town     string `json:"town"`
		County   string `json:"county"`
		Village  string `json:"village"`
		Suburb   string `json:"suburb"`
		Road     string `json:"road"`
	} `json:"address"`
}

// Reverse resolves the point to a place. Coordinates Nominatim cannot place
// return (nil, nil) so callers degrade instead of failing.
func (g *NominatimGeocoder) Reverse(ctx context.Context, point kernel.GeoPoint) (*ports.Place, error) {
	endpoint := fmt.Sprintf("%s/reverse?%s", g.baseURL, url.Values{
		"format": {"jsonv2"},
		"lat":    {fmt.Sprintf("%f", point.Lat())},
		"lon":    {fmt.Sprintf("%f", point.Lng())},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var payload nominatimResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, nil
	}

	return placeFromResponse(payload), nil
}

// placeFromResponse maps Nominatim's address fields onto the port's Place.
// Nominatim reports the city under "city" for metropolitan areas and "town"
// for smaller ones; the province arrives as "province" or "state" depending
// on the country.
func placeFromResponse(payload nominatimResponse) *ports.Place {
	place := &ports.Place{
		Country:          payload.Address.Country,
		Province:         payload.Address.Province,
		County:           payload.Address.County,
		Village:          payload.Address.Village,
		City:             payload.Address.City,
		Road:             payload.Address.Road,
		FormattedAddress: payload.DisplayName,
	}

	if place.Province == "" {
		place.Province = payload.Address.State
	}
	if place.City == "" {
		place.City = payload.Address.Town
	}
	if place.Village == "" {
		place.Village = payload.Address.Suburb
	}

	return place
}
