package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avoronkov/wellfinder/internal/flagx"
	"github.com/avoronkov/wellfinder/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	Backend            string         `json:"backend"`
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	LocalDSN           string         `json:"local_dsn"`
	SimulatedLatency   timex.Duration `json:"simulated_latency"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file is named, nothing is loaded. Read or
// unmarshal errors panic: a broken explicit config is a startup error.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.Backend = jc.Backend
	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.LocalDSN = jc.LocalDSN
	cfg.SimulatedLatency = time.Duration(jc.SimulatedLatency.Duration)
}
