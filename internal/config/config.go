package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultBasePath is the deployment base prefix when none is
	// configured: the site served from its domain root.
	DefaultBasePath = "/"

	// DefaultDataDir is where a site checkout keeps its content files.
	DefaultDataDir = "public/data"

	// DefaultOutDir is where exported documents land.
	DefaultOutDir = "exports"

	// DefaultAdminHash is the fallback bcrypt hash used when
	// FOLIO_ADMIN_HASH is unset. Shipping a default credential is a known
	// weakness inherited from the original site and kept on purpose.
	DefaultAdminHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// BaseURL returns the deployed site's URL for fetching content over HTTP,
// or "" if content should be read from the local data directory instead.
func BaseURL() string {
	return os.Getenv("FOLIO_BASE_URL")
}

// BasePath returns the deployment base prefix prepended to every resolved
// asset path, from FOLIO_BASE_PATH.
func BasePath() string {
	if env := os.Getenv("FOLIO_BASE_PATH"); env != "" {
		return env
	}
	return DefaultBasePath
}

// DataDir returns the local content directory, from FOLIO_DATA_DIR.
func DataDir() string {
	if env := os.Getenv("FOLIO_DATA_DIR"); env != "" {
		return env
	}
	return DefaultDataDir
}

// OutDir returns the export destination directory, from FOLIO_OUT_DIR.
func OutDir() string {
	if env := os.Getenv("FOLIO_OUT_DIR"); env != "" {
		return env
	}
	return DefaultOutDir
}

// AdminHash returns the bcrypt hash the admin password is checked
// against, from FOLIO_ADMIN_HASH with a hardcoded fallback.
func AdminHash() string {
	if env := os.Getenv("FOLIO_ADMIN_HASH"); env != "" {
		return env
	}
	return DefaultAdminHash
}

// StatePath returns the path of the SQLite state database (working-copy
// cache and session flag), from FOLIO_STATE_DB or the XDG data directory.
func StatePath() string {
	if env := os.Getenv("FOLIO_STATE_DB"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "folio", "state.db")
}
