package config

import (
	"flag"
	"os"
	"time"

	"github.com/roadcase/roadcase-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the RoadCase API (default from Config)
//	-d string   device name sent with login requests
//	-b string   token database file path
//	-t int      request timeout in seconds (default from Config)
//	-l string   log level (debug, info, warn, error)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-b", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the RoadCase API")
	fs.StringVar(&cfg.DeviceName, "d", cfg.DeviceName, "device name sent with login requests")
	fs.StringVar(&cfg.TokenDBPath, "b", cfg.TokenDBPath, "token database file path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
