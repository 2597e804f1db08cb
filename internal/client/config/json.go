package config

import (
	"encoding/json"
	"os"

	"github.com/morvin2701/pixelwalls/internal/flagx"
	"github.com/morvin2701/pixelwalls/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations are timex.Duration so they can be written as "3s" or as
// integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr     string         `json:"server_endpoint_addr"`
	OnlineCheckInterval    timex.Duration `json:"online_check_interval"`
	DatabaseDSN            string         `json:"database_dsn"`
	FlatStorePath          string         `json:"flat_store_path"`
	FlatStoreQuota         int            `json:"flat_store_quota"`
	DisableStructuredStore bool           `json:"disable_structured_store"`
	RemoteTimeout          timex.Duration `json:"remote_timeout"`
	LogFile                string         `json:"log_file"`
	LogLevel               string         `json:"log_level"`
}

// parseJson overlays Config with the non-empty values of the JSON file named
// by -c or -config. Without either flag it does nothing. Read and decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.FlatStorePath != "" {
		cfg.FlatStorePath = jc.FlatStorePath
	}
	if jc.FlatStoreQuota != 0 {
		cfg.FlatStoreQuota = jc.FlatStoreQuota
	}
	if jc.DisableStructuredStore {
		cfg.DisableStructuredStore = true
	}
	if jc.RemoteTimeout.Duration != 0 {
		cfg.RemoteTimeout = jc.RemoteTimeout.Duration
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
