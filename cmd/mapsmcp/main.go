package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitroutes/mapsmcp/pkg/config"
	"github.com/fitroutes/mapsmcp/pkg/server"
	"github.com/fitroutes/mapsmcp/pkg/version"
)

var (
	showVersion    bool
	debug          bool
	configPath     string
	metricsAddr    string
	generateConfig string
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090); disabled when empty")
	flag.StringVar(&generateConfig, "generate-config", "", "Generate a Claude Desktop Client config file at the specified path")
}

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if showVersion {
		fmt.Println(version.String())
		return
	}

	if generateConfig != "" {
		if err := generateClientConfig(generateConfig); err != nil {
			logger.Error("failed to generate config", "error", err)
			os.Exit(1)
		}
		logger.Info("successfully generated Claude Desktop Client config", "path", generateConfig)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		logger.Warn("no API key configured, network calls will fail", "env", config.EnvAPIKey)
	}

	logger.Info("starting maps-routes MCP server",
		"version", version.BuildVersion,
		"log_level", logLevel.String())

	if metricsAddr != "" {
		go serveMetrics(logger, metricsAddr)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	logger.Info("server initialized, waiting for requests")
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// serveMetrics exposes the Prometheus registry over HTTP. MCP traffic runs
// on stdio, so this listener is the only HTTP surface of the process.
func serveMetrics(logger *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener failed", "error", err)
	}
}

// generateClientConfig creates or updates a Claude Desktop Client config file
func generateClientConfig(outputPath string) error {
	logger := slog.Default()

	// Get absolute path to executable
	execPath, err := os.Executable()
	if err != nil {
		execPath = os.Args[0] // Fallback to args if cannot get executable path
	}
	absExecPath, err := filepath.Abs(execPath)
	if err != nil {
		absExecPath = execPath // Use as is if cannot resolve absolute path
	}

	// Prepare our server config
	serverConfig := map[string]interface{}{
		"command": absExecPath,
		"args":    []string{},
	}

	var cfg map[string]interface{}

	// Check if file exists already
	if _, err := os.Stat(outputPath); err == nil {
		data, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read existing config: %w", err)
		}

		if err := json.Unmarshal(data, &cfg); err != nil {
			logger.Warn("existing config is not valid JSON, will create new", "error", err)
			cfg = make(map[string]interface{})
		}
	} else {
		cfg = make(map[string]interface{})
	}

	// Check if mcpServers exists, create it if not
	mcpServers, ok := cfg["mcpServers"].(map[string]interface{})
	if !ok {
		mcpServers = make(map[string]interface{})
		cfg["mcpServers"] = mcpServers
	}

	// Add or update our server
	mcpServers["maps-routes"] = serverConfig

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Validate the JSON by attempting to unmarshal it
	var validation interface{}
	if err := json.Unmarshal(data, &validation); err != nil {
		return fmt.Errorf("generated invalid JSON: %w", err)
	}

	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
