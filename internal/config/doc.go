// Package config loads the gagwatch configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gagwatch/config.toml
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	seeds_url = "https://gagapi.onrender.com/seeds"
//	gear_url = "https://gagapi.onrender.com/gear"
//	request_timeout = 10     # seconds
//	granularity = 5          # minutes, 1..60
//	watch_file = "gag_notifier_config.json"
//	log_file = "~/.local/state/gagwatch/gagwatch.log"
//	log_level = "info"
//
// Every field is optional. String values are trimmed and paths get tilde
// expansion; a relative watch_file resolves against the working directory,
// matching where the watch file has always lived.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, and out-of-range
// numbers. A missing file is not an error. URLs are validated later by the
// stock client.
package config
