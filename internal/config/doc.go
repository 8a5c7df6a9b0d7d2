// Package config loads runtime configuration for the UserHub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (USERHUB_SERVER_ADDR,
//     USERHUB_REQUEST_TIMEOUT, USERHUB_STATE_DIR).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags (-a, -t, -s), which override earlier values.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_addr": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "state_dir": "/home/alice/.config/userhub"
//	}
package config
