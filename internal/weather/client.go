// Package weather provides a minimal client for the WeatherAPI.com
// current-conditions and forecast endpoints.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.weatherapi.com"

// Client is a minimal HTTP client for WeatherAPI.com.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a new client. Empty baseURL selects api.weatherapi.com; a
// nil httpClient gets a default with a 15s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// Observation is the current-conditions view for one location.
type Observation struct {
	City      string
	TempC     float64
	Condition string
	Humidity  int
	WindKph   float64
}

// ForecastDay summarizes one forecast day.
type ForecastDay struct {
	Date      string
	MinC      float64
	MaxC      float64
	Condition string
}

type apiResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		Humidity int     `json:"humidity"`
		WindKph  float64 `json:"wind_kph"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC  float64 `json:"maxtemp_c"`
				MinTempC  float64 `json:"mintemp_c"`
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Current fetches current conditions for city.
func (c *Client) Current(ctx context.Context, key, city string) (Observation, error) {
	body, err := c.get(ctx, "/v1/current.json", url.Values{"key": {key}, "q": {city}})
	if err != nil {
		return Observation{}, err
	}
	return observation(body), nil
}

// Forecast fetches a days-long forecast for city along with the current
// conditions the API returns with it.
func (c *Client) Forecast(ctx context.Context, key, city string, days int) (Observation, []ForecastDay, error) {
	body, err := c.get(ctx, "/v1/forecast.json", url.Values{
		"key":  {key},
		"q":    {city},
		"days": {strconv.Itoa(days)},
	})
	if err != nil {
		return Observation{}, nil, err
	}
	fc := make([]ForecastDay, 0, len(body.Forecast.ForecastDay))
	for _, d := range body.Forecast.ForecastDay {
		fc = append(fc, ForecastDay{
			Date:      d.Date,
			MinC:      d.Day.MinTempC,
			MaxC:      d.Day.MaxTempC,
			Condition: d.Day.Condition.Text,
		})
	}
	return observation(body), fc, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return apiResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return apiResponse{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiResponse{}, fmt.Errorf("weather api status %d for %q", resp.StatusCode, query.Get("q"))
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiResponse{}, fmt.Errorf("decode weather response: %w", err)
	}
	return body, nil
}

func observation(body apiResponse) Observation {
	return Observation{
		City:      body.Location.Name,
		TempC:     body.Current.TempC,
		Condition: body.Current.Condition.Text,
		Humidity:  body.Current.Humidity,
		WindKph:   body.Current.WindKph,
	}
}
