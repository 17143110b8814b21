package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete scoring service configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Log    LogSettings    `hcl:"log,block"`
}

// ServerSettings contains listener and websocket settings
type ServerSettings struct {
	Addr         string `hcl:"addr,optional"`
	PingInterval int    `hcl:"ping_interval,optional"` // seconds between websocket keepalive pings
	ReadLimit    int64  `hcl:"read_limit,optional"`    // maximum websocket message size in bytes
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// DefaultConfig returns the default service configuration
func DefaultConfig() Config {
	return Config{
		Server: ServerSettings{
			Addr:         ":8080",
			PingInterval: 30,
			ReadLimit:    1 << 20,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// LoadConfig loads the service configuration from an HCL file. A missing
// file yields the defaults; missing values fall back to their defaults.
func LoadConfig(filename string) (Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Server.Addr == "" {
		config.Server.Addr = defaults.Server.Addr
	}
	if config.Server.PingInterval == 0 {
		config.Server.PingInterval = defaults.Server.PingInterval
	}
	if config.Server.ReadLimit == 0 {
		config.Server.ReadLimit = defaults.Server.ReadLimit
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	return config, nil
}

// Validate validates the service configuration
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}

	if c.Server.PingInterval <= 0 {
		return fmt.Errorf("ping interval must be positive")
	}

	if c.Server.ReadLimit <= 0 {
		return fmt.Errorf("read limit must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
