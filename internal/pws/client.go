package pws

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wx-tools/pws-client/internal/config"
	"github.com/wx-tools/pws-client/internal/model"
	"go.uber.org/zap"
)

// Custom error types
var (
	// ErrUnexpectedStatus wraps any non-2xx response from the PWS API,
	// including the 401 issued for a missing or bad API key.
	ErrUnexpectedStatus = errors.New("unexpected status from PWS API")
	// ErrNoObservations is returned when a sole-record endpoint comes
	// back with an empty observations list.
	ErrNoObservations = errors.New("no observations in PWS response")
)

// Options holds the per-instance defaults for a Client. Zero fields fall
// back to the environment (WX_API_KEY, WX_STATION) and config file.
type Options struct {
	APIKey  string
	Station string
	Units   model.Units
	APIRoot string
}

// Client is a client for The Weather Company's Personal Weather Station
// (PWS) HTTP API. Its defaults are fixed at construction; per-call
// station overrides never mutate them, so a Client is safe to share.
type Client struct {
	apiRoot    string
	params     url.Values
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a PWS API client. Pass an *http.Client to override
// the default transport, e.g. in tests.
func NewClient(opts Options, httpClient ...*http.Client) *Client {
	client := &http.Client{Timeout: config.GetHTTPTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = config.GetAPIKey()
	}
	station := opts.Station
	if station == "" {
		station = config.GetStation()
	}
	units := opts.Units
	if units == "" {
		units = model.Units(config.GetDefaultUnits())
	}
	apiRoot := opts.APIRoot
	if apiRoot == "" {
		apiRoot = config.GetAPIRoot()
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)
	if station != "" {
		params.Set("stationId", station)
	}
	params.Set("units", string(units))
	params.Set("format", "json")
	params.Set("numericPrecision", "decimal")

	return &Client{
		apiRoot:    apiRoot,
		params:     params,
		httpClient: client,
		logger:     config.GetLogger(),
	}
}

// requestParams copies the client defaults and overlays the optional
// per-call station override.
func (c *Client) requestParams(station string) url.Values {
	params := url.Values{}
	for key, values := range c.params {
		params[key] = values
	}
	if station != "" {
		params.Set("stationId", station)
	}
	return params
}

// fetch performs one GET against the given endpoint path and decodes the
// JSON body into target. Non-2xx responses are not retried.
func (c *Client) fetch(path string, params url.Values, target any) error {
	requestURL := c.apiRoot + path + "?" + params.Encode()
	c.logger.Debugw("Requesting PWS endpoint", "path", path, "station", params.Get("stationId"))

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return fmt.Errorf("error making request to PWS API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warnw("PWS API returned non-success status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("error decoding PWS response: %w", err)
	}
	return nil
}

// fetchObservations handles the endpoints sharing the observations
// envelope, flattening every record.
func (c *Client) fetchObservations(path string, params url.Values) ([]model.Record, error) {
	var envelope model.ObservationsResponse
	if err := c.fetch(path, params, &envelope); err != nil {
		return nil, err
	}
	return model.FlattenAll(envelope.Observations), nil
}

// Current returns the station's current conditions observation.
func (c *Client) Current(station ...string) (model.Record, error) {
	observations, err := c.fetchObservations("/pws/observations/current", c.requestParams(optStation(station)))
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, ErrNoObservations
	}
	return observations[0], nil
}

// DailySummary7Day returns one summary record per day for the last seven
// days.
func (c *Client) DailySummary7Day(station ...string) ([]model.Record, error) {
	var envelope model.SummariesResponse
	if err := c.fetch("/pws/dailysummary/7day", c.requestParams(optStation(station)), &envelope); err != nil {
		return nil, err
	}
	return model.FlattenAll(envelope.Summaries), nil
}

// Observations1DayHighRes returns today's observations at the station's
// full reporting frequency, as often as every 5 minutes.
func (c *Client) Observations1DayHighRes(station ...string) ([]model.Record, error) {
	return c.fetchObservations("/pws/observations/all/1day", c.requestParams(optStation(station)))
}

// Observations7DayHourly returns hourly observation records for the last
// seven days.
func (c *Client) Observations7DayHourly(station ...string) ([]model.Record, error) {
	return c.fetchObservations("/pws/observations/hourly/7day", c.requestParams(optStation(station)))
}

// HistoryDaily returns the summary record for a single past date. A day
// with no observations returns a nil record and nil error.
func (c *Client) HistoryDaily(date time.Time, station ...string) (model.Record, error) {
	params := c.requestParams(optStation(station))
	params.Set("date", formatDate(date))
	observations, err := c.fetchObservations("/pws/history/daily", params)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, nil
	}
	return observations[0], nil
}

// HistoryHourly returns the hourly records for a single past date.
func (c *Client) HistoryHourly(date time.Time, station ...string) ([]model.Record, error) {
	params := c.requestParams(optStation(station))
	params.Set("date", formatDate(date))
	return c.fetchObservations("/pws/history/hourly", params)
}

func optStation(station []string) string {
	if len(station) > 0 {
		return station[0]
	}
	return ""
}
