package config

import (
	"flag"
	"os"
	"time"

	"github.com/morvin2701/pixelwalls/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     address and port of the backend server
//	-i int        online check interval in seconds
//	-d string     SQLite database file
//	-f string     flat store file
//	-q int        flat store quota in bytes
//	-n            disable the SQLite tier
//	-t duration   remote call timeout (e.g. 5s), 0 for none
//	-l string     log file
//	-v string     log level
//
// Only the flags listed above are passed to the FlagSet, so -c/-config and
// anything else on the command line is ignored here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-f", "-q", "-n", "-t", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local SQLite database file")
	fs.StringVar(&cfg.FlatStorePath, "f", cfg.FlatStorePath, "local flat store file")
	fs.IntVar(&cfg.FlatStoreQuota, "q", cfg.FlatStoreQuota, "flat store quota (in bytes)")
	fs.BoolVar(&cfg.DisableStructuredStore, "n", cfg.DisableStructuredStore, "disable the SQLite store")
	fs.DurationVar(&cfg.RemoteTimeout, "t", cfg.RemoteTimeout, "remote call timeout")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
