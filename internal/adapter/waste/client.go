// Package waste provides a read-only client for the waste/points service.
package waste

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

// Client is the waste service HTTP client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new waste service client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Point is one collection point.
type Point struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Impact is the aggregate environmental impact summary.
type Impact struct {
	TotalCO2Saved         float64 `json:"totalCO2Saved"`
	TotalWaterSaved       float64 `json:"totalWaterSaved"`
	TotalEnergyEquivalent float64 `json:"totalEnergyEquivalent"`
	TreesEquivalent       float64 `json:"treesEquivalent"`
	TotalWasteProcessed   int     `json:"totalWasteProcessed"`
	HighRiskWastes        int     `json:"highRiskWastes"`
	CarsOffRoad           float64 `json:"carsOffRoad"`
	PhonesCharged         int     `json:"phonesCharged"`
}

// ListPoints retrieves all collection points.
func (c *Client) ListPoints(ctx context.Context) ([]Point, error) {
	var points []Point
	if err := c.getJSON(ctx, "/api/points", &points); err != nil {
		return nil, err
	}
	return points, nil
}

// GetImpact retrieves the impact-analysis summary.
func (c *Client) GetImpact(ctx context.Context) (*Impact, error) {
	var impact Impact
	if err := c.getJSON(ctx, "/api/impact-analysis", &impact); err != nil {
		return nil, err
	}
	return &impact, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("waste service error [%d]: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
