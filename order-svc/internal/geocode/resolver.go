// Package geocode turns device coordinates into a delivery location.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"menu-order/order-svc/internal/domain"
	"menu-order/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	// URL is a Nominatim-compatible reverse endpoint. Empty disables lookups.
	URL       string
	Timeout   time.Duration
	UserAgent string
}

type Resolver struct {
	config Config
	client HTTPClient
	log    *logger.Logger
}

func NewResolver(config Config, client HTTPClient, log *logger.Logger) *Resolver {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "menu-order/1.0"
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Resolver{config: config, client: client, log: log.WithComponent("geocode")}
}

// reverseResult is the subset of the Nominatim jsonv2 reply we read.
type reverseResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Road          string `json:"road"`
		HouseNumber   string `json:"house_number"`
		Building      string `json:"building"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		Quarter       string `json:"quarter"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
	} `json:"address"`
}

// Resolve always returns the coordinate fallback. Address fields are filled
// when the reverse lookup answers in time.
func (r *Resolver) Resolve(ctx context.Context, lat, lon float64, lang domain.Language) domain.Location {
	coords := formatCoordinate(lat) + ", " + formatCoordinate(lon)
	loc := domain.Location{
		Label:       coords,
		URL:         MapURL(lat, lon),
		Coordinates: coords,
	}
	if r.config.URL == "" || r.client == nil {
		return loc
	}

	result, err := r.reverse(ctx, lat, lon, lang)
	if err != nil {
		r.log.Warn("reverse geocoding failed", "error", err)
		return loc
	}

	a := result.Address
	loc.Area = firstNonEmpty(a.Suburb, a.Neighbourhood, a.Quarter, a.City, a.Town, a.Village)
	loc.Street = strings.TrimSpace(strings.Join(nonEmpty(a.Road, a.HouseNumber), " "))
	loc.Building = a.Building
	if result.DisplayName != "" {
		loc.Label = result.DisplayName
	}
	return loc
}

func (r *Resolver) reverse(ctx context.Context, lat, lon float64, lang domain.Language) (reverseResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", formatCoordinate(lat))
	query.Set("lon", formatCoordinate(lon))
	query.Set("accept-language", string(lang))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.config.URL+"?"+query.Encode(), nil)
	if err != nil {
		return reverseResult{}, err
	}
	req.Header.Set("User-Agent", r.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return reverseResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return reverseResult{}, fmt.Errorf("reverse geocoding returned %d", resp.StatusCode)
	}

	var result reverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return reverseResult{}, fmt.Errorf("decode reverse geocoding reply: %w", err)
	}
	return result, nil
}

// MapURL links to the coordinates on a public map.
func MapURL(lat, lon float64) string {
	return "https://www.google.com/maps?q=" + formatCoordinate(lat) + "," + formatCoordinate(lon)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
