// Package config resolves the launcher's settings from the process environment.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables consulted during resolution.
const (
	EnvOverride  = "JASPER_VENV"
	EnvWorkspace = "WORKON_HOME"
	EnvHome      = "HOME"
	EnvLogLevel  = "JASPER_LAUNCHER_LOG"
)

// EnvironmentName is the virtualenv directory name under a workspace.
const EnvironmentName = "Jasper"

// Source identifies which rule produced the environment root.
type Source string

const (
	SourceOverride  Source = "override"
	SourceWorkspace Source = "workspace"
	SourceDefault   Source = "default"
)

// Lookup returns the value of an environment variable, or "" when unset.
type Lookup func(key string) string

// OSLookup reads the real process environment.
func OSLookup(key string) string { return os.Getenv(key) }

// MapLookup serves variables from a fixed map.
func MapLookup(m map[string]string) Lookup {
	return func(key string) string { return m[key] }
}

// ---------------------------------------------------------------------------
// Environment root resolution
// ---------------------------------------------------------------------------

// Resolution is a resolved environment root and the rule that produced it.
type Resolution struct {
	Path   string
	Source Source
}

// ResolveEnvironmentRoot returns the virtualenv root and the source of the resolution.
// Priority: JASPER_VENV → $WORKON_HOME/Jasper → ~/.virtualenvs/Jasper
//
// The workspace path is the literal $WORKON_HOME + "/Jasper", as a shell
// would expand it; it is not cleaned, so "a/../b" keeps its ".." segment.
func ResolveEnvironmentRoot(lookup Lookup) Resolution {
	if v := lookup(EnvOverride); v != "" {
		return Resolution{Path: v, Source: SourceOverride}
	}
	if w := lookup(EnvWorkspace); w != "" {
		return Resolution{Path: w + "/" + EnvironmentName, Source: SourceWorkspace}
	}
	return Resolution{
		Path:   filepath.Join(homeDir(lookup), ".virtualenvs", EnvironmentName),
		Source: SourceDefault,
	}
}

// ProfilePath returns the location of the Jasper profile (~/.jasper/profile.yml).
func ProfilePath(lookup Lookup) string {
	return filepath.Join(homeDir(lookup), ".jasper", "profile.yml")
}

// homeDir returns HOME from lookup, then os.UserHomeDir. When neither is
// available it returns "", which leaves paths built on it relative to the
// working directory.
func homeDir(lookup Lookup) string {
	if h := lookup(EnvHome); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("home directory unknown, using a relative path", "err", err)
		return ""
	}
	return home
}

// ---------------------------------------------------------------------------
// Logging
// ---------------------------------------------------------------------------

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the launcher's own log level from JASPER_LAUNCHER_LOG,
// one of debug, info, warn or error (any case). Anything else, including
// slog offsets such as "debug+2", yields slog.LevelWarn.
func LogLevel(lookup Lookup) slog.Level {
	raw := strings.ToLower(strings.TrimSpace(lookup(EnvLogLevel)))
	if lvl, ok := logLevels[raw]; ok {
		return lvl
	}
	return slog.LevelWarn
}
