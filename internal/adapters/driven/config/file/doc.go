// Package file provides a TOML file-based implementation of the
// ConfigStore driven port.
//
// Configuration lives in ~/.repohome/config.toml. Only a handful of keys
// are meaningful (remote.name, browser.command, github.token,
// history.enabled); unknown keys are preserved on save.
package file
