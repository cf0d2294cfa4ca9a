// Package app wires the toolboxes and servers for the two gateway
// binaries. Both catalogs are built once at startup and never change
// while the process serves requests.
package app

import (
	"os"

	"github.com/gitweather/gitweather-mcp-server/internal/gitapi"
	"github.com/gitweather/gitweather-mcp-server/internal/mcp"
	"github.com/gitweather/gitweather-mcp-server/internal/tools"
	"github.com/gitweather/gitweather-mcp-server/internal/weather"
)

// NewGitToolbox builds the toolbox for the git comparison server.
// GITHUB_API_URL overrides the upstream base, mainly for tests and
// GitHub Enterprise hosts.
func NewGitToolbox() *mcp.Toolbox {
	api := gitapi.New(os.Getenv("GITHUB_API_URL"), nil)
	return mcp.NewToolbox(
		tools.GitChangesBetweenVersions(api),
	)
}

// NewWeatherToolbox builds the toolbox for the weather server.
// WEATHER_API_URL overrides the upstream base.
func NewWeatherToolbox() *mcp.Toolbox {
	api := weather.New(os.Getenv("WEATHER_API_URL"), nil)
	return mcp.NewToolbox(
		tools.GetCurrentWeather(api),
		tools.GetWeatherForecast(api),
		tools.CompareWeather(api),
	)
}

// NewGitServer constructs the MCP server for the git toolbox.
func NewGitServer() *mcp.Server {
	return mcp.NewServer("git-mcp-server", NewGitToolbox())
}

// NewWeatherServer constructs the MCP server for the weather toolbox.
func NewWeatherServer() *mcp.Server {
	return mcp.NewServer("weather-mcp-server", NewWeatherToolbox())
}
