package extsync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/config"
	"github.com/vehicle-catalog-api/internal/models"
)

// Endpoint paths of the external marketplace catalog, one per vehicle type.
var catalogPaths = map[string]string{
	models.VehicleTypeCar:        "marques-cotxe",
	models.VehicleTypeMotorcycle: "marques-moto",
}

// listResponse is the documented envelope of the catalog API. The API
// sometimes returns a bare array instead, which FetchModels also accepts.
type listResponse struct {
	Status string              `json:"status"`
	Total  int                 `json:"total"`
	Data   []models.BrandEntry `json:"data"`
}

// Client fetches model lists from the external catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewClient creates a catalog API client with a bounded request timeout.
func NewClient(cfg *config.CatalogConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		log:        log.With().Str("component", "catalog-client").Logger(),
	}
}

// FetchBrands fetches the full brand list of one vehicle type.
func (c *Client) FetchBrands(ctx context.Context, vehicleType string) ([]models.BrandEntry, error) {
	path, ok := catalogPaths[vehicleType]
	if !ok {
		return nil, fmt.Errorf("no catalog endpoint for vehicle type %q", vehicleType)
	}
	return c.fetchList(ctx, fmt.Sprintf("%s/%s", c.baseURL, path))
}

// FetchModels fetches the model list for one brand.
func (c *Client) FetchModels(ctx context.Context, vehicleType, brandSlug string) ([]models.BrandEntry, error) {
	path, ok := catalogPaths[vehicleType]
	if !ok {
		return nil, fmt.Errorf("no catalog endpoint for vehicle type %q", vehicleType)
	}
	return c.fetchList(ctx, fmt.Sprintf("%s/%s?marca=%s", c.baseURL, path, url.QueryEscape(brandSlug)))
}

// fetchList performs one catalog GET. The response shape is normalized
// defensively: either the documented {data: [...]} envelope or a bare array
// is accepted; anything else yields an empty result with a warning, not an
// error.
func (c *Client) fetchList(ctx context.Context, endpoint string) ([]models.BrandEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API status %d for %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope listResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var bare []models.BrandEntry
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	c.log.Warn().
		Str("endpoint", endpoint).
		Msg("Unexpected catalog API response shape, treating as empty")
	return nil, nil
}
