// Package config loads runtime configuration for the PixelWalls CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be either strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_dsn": "pixelwalls.db",
//	  "flat_store_path": "pixelwalls.kv.json",
//	  "flat_store_quota": 5242880,
//	  "disable_structured_store": false,
//	  "remote_timeout": "5s",
//	  "log_file": "pixelwalls.log",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
