package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
	"github.com/gitweather/gitweather-mcp-server/internal/weather"
)

// weatherKeyHelp is returned whenever WEATHER_API_KEY is missing. No
// upstream call is attempted in that case.
const weatherKeyHelp = "WEATHER_API_KEY is not set. Get a free key at https://www.weatherapi.com/signup.aspx and export it before calling weather tools"

// weatherAPIKey reads the credential at invocation time.
func weatherAPIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv("WEATHER_API_KEY"))
	if key == "" {
		return "", errors.New(weatherKeyHelp)
	}
	return key, nil
}

func formatObservation(city string, obs weather.Observation) string {
	return fmt.Sprintf("Current weather in %s: %s, %.1f°C, humidity %d%%, wind %.1f km/h",
		city, obs.Condition, obs.TempC, obs.Humidity, obs.WindKph)
}

// currentWeatherTool reports current conditions for one city.
type currentWeatherTool struct {
	api *weather.Client
}

// GetCurrentWeather constructs the tool around a weather client.
func GetCurrentWeather(api *weather.Client) *currentWeatherTool {
	return &currentWeatherTool{api: api}
}

func (t *currentWeatherTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_current_weather",
		Description: "Get the current weather conditions for a city.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"city": {Type: "string", Description: "City name, e.g. Paris"},
			},
			Required: []string{"city"},
		},
	}
}

type currentWeatherArgs struct {
	City string `json:"city"`
}

func (t *currentWeatherTool) Invoke(ctx context.Context, raw json.RawMessage) (string, error) {
	var args currentWeatherArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	key, err := weatherAPIKey()
	if err != nil {
		return "", err
	}
	obs, err := t.api.Current(ctx, key, args.City)
	if err != nil {
		return "", err
	}
	return formatObservation(args.City, obs), nil
}
