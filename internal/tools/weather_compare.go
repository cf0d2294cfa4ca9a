package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
	"github.com/gitweather/gitweather-mcp-server/internal/weather"
)

// compareWeatherTool compares current temperatures between two cities.
type compareWeatherTool struct {
	api *weather.Client
}

// CompareWeather constructs the tool around a weather client.
func CompareWeather(api *weather.Client) *compareWeatherTool {
	return &compareWeatherTool{api: api}
}

func (t *compareWeatherTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "compare_weather",
		Description: "Compare the current weather of two cities and report which one is warmer.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"city1": {Type: "string", Description: "First city name"},
				"city2": {Type: "string", Description: "Second city name"},
			},
			Required: []string{"city1", "city2"},
		},
	}
}

type compareWeatherArgs struct {
	City1 string `json:"city1"`
	City2 string `json:"city2"`
}

func (t *compareWeatherTool) Invoke(ctx context.Context, raw json.RawMessage) (string, error) {
	var args compareWeatherArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	key, err := weatherAPIKey()
	if err != nil {
		return "", err
	}

	// Both fetches run concurrently; each result lands in its own slot
	// so the comparison never depends on completion order. Either
	// failure fails the whole invocation.
	cities := [2]string{args.City1, args.City2}
	var obs [2]weather.Observation
	g, gctx := errgroup.WithContext(ctx)
	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			o, err := t.api.Current(gctx, key, city)
			if err != nil {
				return fmt.Errorf("%s: %w", city, err)
			}
			obs[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	diff := obs[0].TempC - obs[1].TempC
	switch {
	case diff == 0:
		return fmt.Sprintf("%s and %s are both at %.1f°C (%s: %s, %s: %s).",
			args.City1, args.City2, obs[0].TempC, args.City1, obs[0].Condition, args.City2, obs[1].Condition), nil
	case diff > 0:
		return fmt.Sprintf("%s is warmer than %s by %.1f°C (%s: %.1f°C, %s: %.1f°C).",
			args.City1, args.City2, diff, args.City1, obs[0].TempC, args.City2, obs[1].TempC), nil
	default:
		return fmt.Sprintf("%s is warmer than %s by %.1f°C (%s: %.1f°C, %s: %.1f°C).",
			args.City2, args.City1, math.Abs(diff), args.City2, obs[1].TempC, args.City1, obs[0].TempC), nil
	}
}
