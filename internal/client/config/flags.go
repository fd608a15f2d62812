package config

import (
	"flag"
	"os"
	"time"

	"github.com/avoronkov/wellfinder/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-m string   backend mode: local | remote
//	-a string   base URL of the backend server (remote mode)
//	-r int      request timeout in seconds (remote mode)
//	-d string   SQLite DSN for the local store (local mode)
//	-l int      simulated latency in milliseconds (local mode)
//
// The function filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-a", "-r", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "m", cfg.Backend, "backend mode: local | remote")
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL to access server")
	requestTimeoutSeconds := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LocalDSN, "d", cfg.LocalDSN, "SQLite DSN for the local store")
	simulatedLatencyMillis := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeoutSeconds) * time.Second
	cfg.SimulatedLatency = time.Duration(*simulatedLatencyMillis) * time.Millisecond
}
