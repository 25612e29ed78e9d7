// Package weather talks to the OpenWeatherMap current conditions endpoint.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hamidzr/gweather/constant"
	"github.com/hamidzr/gweather/model"
	"github.com/sirupsen/logrus"
)

// Service is what the application needs from a weather provider.
type Service interface {
	Current(ctx context.Context, city string) (*model.Report, error)
	ByCoordinates(ctx context.Context, lat, lon float64) (*model.Report, error)
}

// Options configure a Client.
type Options struct {
	APIKey  string
	BaseURL string
	Units   model.Units
	Timeout time.Duration
}

// Client is an http backed Service.
type Client struct {
	opts Options
	http *http.Client
}

var _ Service = (*Client)(nil)

const defaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response we are willing to read.
const maxBodySize = 1 << 20

// NewClient fills unset options with defaults.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = constant.DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	opts.Units = model.ParseUnits(string(opts.Units))
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
	}
}

// Current fetches conditions for a city by name.
func (c *Client) Current(ctx context.Context, city string) (*model.Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, newServiceError(ErrEmptyCity, 0, "City name cannot be empty")
	}
	params := url.Values{}
	params.Set("q", city)

	status, body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, newServiceError(ErrNotFound, status, fmt.Sprintf("City '%s' not found. Check spelling.", city))
	case status == http.StatusUnauthorized:
		return nil, newServiceError(ErrUnauthorized, status, "Invalid API key. Check your configuration.")
	case status >= http.StatusInternalServerError:
		return nil, newServiceError(ErrServer, status, "Weather service unavailable (server error). Try again later.")
	case status != http.StatusOK:
		return nil, newServiceError(ErrStatus, status, fmt.Sprintf("Error fetching weather: %d", status))
	}
	return c.decode(body)
}

// ByCoordinates fetches conditions for a latitude/longitude pair.
func (c *Client) ByCoordinates(ctx context.Context, lat, lon float64) (*model.Report, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	status, body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newServiceError(statusKind(status), status,
			fmt.Sprintf("Error fetching weather by coordinates: %d", status))
	}
	return c.decode(body)
}

func statusKind(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrStatus
	}
}

func (c *Client) get(ctx context.Context, params url.Values) (int, []byte, error) {
	params.Set("appid", c.opts.APIKey)
	params.Set("units", string(c.opts.Units))

	endpoint, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return 0, nil, newServiceError(ErrNetwork, 0, fmt.Sprintf("Unexpected error: %v", err))
	}
	query := endpoint.Query()
	for k, vs := range params {
		query[k] = vs
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, nil, newServiceError(ErrNetwork, 0, fmt.Sprintf("Unexpected error: %v", err))
	}
	req.Header.Set("Accept", "application/json")

	logrus.WithField("host", endpoint.Host).Debug("requesting weather")
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, transportError(err)
	}
	logrus.WithField("status", resp.StatusCode).Debug("weather response")
	return resp.StatusCode, body, nil
}

func (c *Client) decode(body []byte) (*model.Report, error) {
	report, err := model.ParseReport(body, c.opts.Units)
	if err != nil {
		return nil, &ServiceError{Kind: ErrDecode, Message: fmt.Sprintf("Unexpected error: %v", err), cause: err}
	}
	return report, nil
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &ServiceError{Kind: ErrTimeout, Message: "Request timed out. Check your internet connection.", cause: err}
	}
	return &ServiceError{Kind: ErrNetwork, Message: "Network error. Check your connection.", cause: err}
}
