package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
	"github.com/gitweather/gitweather-mcp-server/internal/weather"
)

const (
	defaultForecastDays = 3
	maxForecastDays     = 10 // WeatherAPI.com free-tier ceiling
)

// forecastTool reports a multi-day forecast for one city.
type forecastTool struct {
	api *weather.Client
}

// GetWeatherForecast constructs the tool around a weather client.
func GetWeatherForecast(api *weather.Client) *forecastTool {
	return &forecastTool{api: api}
}

func (t *forecastTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_weather_forecast",
		Description: "Get a daily weather forecast for a city. Defaults to 3 days, up to 10.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"city": {Type: "string", Description: "City name, e.g. Paris"},
				"days": {Type: "number", Description: "Number of forecast days (1-10, default 3)"},
			},
			Required: []string{"city"},
		},
	}
}

type forecastArgs struct {
	City string `json:"city"`
	Days int    `json:"days"`
}

func (t *forecastTool) Invoke(ctx context.Context, raw json.RawMessage) (string, error) {
	var args forecastArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	key, err := weatherAPIKey()
	if err != nil {
		return "", err
	}
	days := args.Days
	if days <= 0 {
		days = defaultForecastDays
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	_, fc, err := t.api.Forecast(ctx, key, args.City, days)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Forecast for %s (%d days):\n", args.City, days)
	for _, d := range fc {
		fmt.Fprintf(&b, "- %s: %s, %.1f to %.1f°C\n", d.Date, d.Condition, d.MinC, d.MaxC)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
