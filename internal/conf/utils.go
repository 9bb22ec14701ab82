package conf

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/relaykit/mock-provider/internal/errors"
)

// OS name constants for runtime.GOOS comparisons.
const (
	osWindows = "windows"
)

// GetDefaultConfigPaths returns the default configuration search paths for
// the current operating system, most specific first.
func GetDefaultConfigPaths() ([]string, error) {
	var configPaths []string

	exePath, err := os.Executable()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "get-executable-path").
			Build()
	}
	exeDir := filepath.Dir(exePath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "get-home-directory").
			Build()
	}

	switch runtime.GOOS {
	case osWindows:
		configPaths = []string{
			exeDir,
			filepath.Join(homeDir, "AppData", "Roaming", "mock-provider"),
		}
	default:
		configPaths = []string{
			filepath.Join(homeDir, ".config", "mock-provider"),
			"/etc/mock-provider",
		}
	}

	return configPaths, nil
}
