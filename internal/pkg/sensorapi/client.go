package sensorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

func LoadConfiguration(ctx context.Context) Config {
	timeout, err := time.ParseDuration(env.GetVariableOrDefault(ctx, "SENSOR_API_TIMEOUT", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}

	return Config{
		URL:      env.GetVariableOrDefault(ctx, "SENSOR_API_URL", ""),
		Username: env.GetVariableOrDefault(ctx, "SENSOR_API_USER", ""),
		Password: env.GetVariableOrDefault(ctx, "SENSOR_API_PASSWORD", ""),
		Timeout:  timeout,
	}
}

// Client fetches the periodic payloads a logger has delivered to the remote
// sensor API.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("sensor api url must be provided")
	}

	return &Client{
		baseURL:  strings.TrimSuffix(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// FetchPayloads returns every payload object the API holds for serial on the
// calendar day of day, each as raw JSON.
func (c *Client) FetchPayloads(ctx context.Context, serial string, day time.Time) ([][]byte, error) {
	params := url.Values{
		"robot":    {"1"},
		"sampling": {day.Format("2006/01/02")},
	}

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(serial), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch payloads: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sensor api error: status %d: %s", resp.StatusCode, body)
	}

	var payloads []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	logging.GetFromContext(ctx).Debug("fetched payloads", "sn", serial, "count", len(payloads))

	result := make([][]byte, 0, len(payloads))
	for _, p := range payloads {
		result = append(result, []byte(p))
	}

	return result, nil
}
