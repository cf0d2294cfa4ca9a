// Command weather-mcp serves the weather toolbox over MCP, on stdio by
// default or over HTTP with -http.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/gitweather/gitweather-mcp-server/internal/app"
	"github.com/gitweather/gitweather-mcp-server/internal/logging"
	"github.com/gitweather/gitweather-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", "", "serve MCP over HTTP on this address instead of stdio (e.g. :3334)")
	flag.Parse()

	log, closeLog, err := logging.New("weather-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "weather-mcp: logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	server := app.NewWeatherServer()
	if *httpAddr != "" {
		log.Infof("serving MCP over HTTP on %s", *httpAddr)
		if err := mcp.RunHTTP(server, *httpAddr); err != nil {
			fmt.Fprintf(os.Stderr, "weather-mcp: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log.Info("serving MCP over stdio")
	if err := mcp.RunStdio(context.Background(), server, log); err != nil {
		fmt.Fprintf(os.Stderr, "weather-mcp: %v\n", err)
		os.Exit(1)
	}
}
