// Package config loads and validates keyline's TOML configuration.
//
// Configuration is optional: a missing file yields the defaults, and
// every field has a sensible zero-cost fallback. The file has an
// [editor] section for editing policy (line length limit, history ring
// size, Ctrl-D behavior), a [history] section for the optional on-disk
// line store, and a [log] section for the application logger.
//
// A Watcher can monitor the configuration file and report changes, so
// the application can re-apply editor options between read-line
// sessions without restarting.
package config
