package app

import (
	"os"
	"path/filepath"
)

// Flags holds the command line switches that influence the whole app.
// They are bound by the cobra root command in cmd/tui.
var Flags = struct {
	Debug      bool
	ShowHidden bool
	Version    bool
}{}

func IsDev() bool {
	return os.Getenv("CHANNEL") == "dev"
}

func Name() string {
	return "Thicket"
}

// ModuleName is used for the config directory and file names.
func ModuleName() string {
	moduleName := "thicket"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		moduleName += "-" + channel
	}

	return moduleName
}

// ConfigDir returns the config directory.
// THICKET_CONFIG_DIR overrides the platform default which keeps tests
// away from the user's real configuration.
func ConfigDir() (string, error) {
	confDir := os.Getenv("THICKET_CONFIG_DIR")

	if confDir == "" {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		confDir = filepath.Join(userConfigDir, ModuleName())
	}

	if _, err := os.Stat(confDir); err != nil {
		if err := os.MkdirAll(confDir, 0755); err != nil {
			return "", err
		}
	}

	return confDir, nil
}

// ConfigFile returns the path to the ini config file
func ConfigFile() (string, error) {
	return configPath(ModuleName() + ".conf")
}

// VerbsFile returns the path to the user's verb definitions
func VerbsFile() (string, error) {
	return configPath("verbs.json")
}

// StateFile returns the path to the command history file
func StateFile() (string, error) {
	return configPath(ModuleName() + "_history")
}

func configPath(name string) (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, name), nil
}
