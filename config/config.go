// Package config resolves run settings from the environment and an
// optional .env file. Command-line flags override these values.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all settings for a run.
type Config struct {
	RosterDir  string // Lua roster directory; empty → built-in campaign
	LogFile    string // structured combat log path; empty → none
	ReportPath string // JSON campaign report path; empty → none
	ScriptFile string // replay operator input from this file
	Plain      bool   // force the line-based CLI
	QuietLog   bool   // hide console combat log lines
}

// Load reads an optional .env file from the working directory, then
// environment variables. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from environment variables only.
func FromEnv() *Config {
	return &Config{
		RosterDir:  os.Getenv("BOSSRUSH_ROSTER"),
		LogFile:    os.Getenv("BOSSRUSH_LOG_FILE"),
		ReportPath: os.Getenv("BOSSRUSH_REPORT"),
		Plain:      getEnvBool("BOSSRUSH_PLAIN"),
		QuietLog:   getEnvBool("BOSSRUSH_QUIET_LOG"),
	}
}

func getEnvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}
