package config

import (
	"time"

	"github.com/morvin2701/pixelwalls/internal/client/flatstore"
)

// Config holds runtime settings for the PixelWalls CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabaseDSN: SQLite file backing the structured tier and session cache.
//   - FlatStorePath: JSON file backing the flat key-value tier.
//   - FlatStoreQuota: byte budget of the flat tier.
//   - DisableStructuredStore: run as if SQLite were unavailable.
//   - RemoteTimeout: deadline for each remote read/write, zero for none.
//   - LogFile, LogLevel: zap output file and level.
type Config struct {
	ServerEndpointAddr     string
	OnlineCheckInterval    time.Duration
	DatabaseDSN            string
	FlatStorePath          string
	FlatStoreQuota         int
	DisableStructuredStore bool
	RemoteTimeout          time.Duration
	LogFile                string
	LogLevel               string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseDSN = "pixelwalls.db"
	c.FlatStorePath = "pixelwalls.kv.json"
	c.FlatStoreQuota = flatstore.DefaultQuota
	c.DisableStructuredStore = false
	c.RemoteTimeout = 0
	c.LogFile = "pixelwalls.log"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
