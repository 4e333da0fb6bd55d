package config

import "time"

// Config holds runtime settings for the RoadCase CLI.
//
// Fields:
//   - APIBaseURL: base URL of the RoadCase REST API.
//   - DeviceName: device label sent with login requests.
//   - TokenDBPath: path of the token database file; "" resolves to the
//     default location under the user config dir at startup.
//   - RequestTimeout: transport-level timeout applied to every request.
//     There is no per-operation timeout and no retry.
//   - LogLevel: zerolog level name ("debug", "info", "warn", "error").
type Config struct {
	APIBaseURL     string
	DeviceName     string
	TokenDBPath    string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://roadcase-stage.laravel.cloud/api"
	c.DeviceName = "RoadCase-CLI"
	c.TokenDBPath = ""
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file, if present), a JSON file
// (if given via -c/-config), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
