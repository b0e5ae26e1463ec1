package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "READINGLOG"

var Opts *Options

// GetConfig loads the defaults, then the optional config file, then the
// READINGLOG_* environment variables, and makes sure the data directory exists.
func GetConfig(file string) (*Options, error) {
	GetDefaultOptions()

	v := viper.New()
	for key, value := range defaults(Opts) {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrapf(err, "unable to access config file %s", file)
		}
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", file)
		}
	}
	if err := v.Unmarshal(Opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	dataDir, err := checkDataDir(Opts.Data)
	if err != nil {
		return nil, err
	}
	Opts.Data = dataDir
	if Opts.DSN == "" {
		Opts.DSN = filepath.Join(Opts.Data, defaultDSNName)
	}

	return Opts, nil
}

// ParseFile loads configuration from file on top of the defaults.
func ParseFile(file string) (*Options, error) {
	if file == "" {
		return nil, errors.New("config file path is empty")
	}
	return GetConfig(file)
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		absDir, err := filepath.Abs(dataDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err == nil {
		return dataDir, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}

	err := os.MkdirAll(dataDir, 0755)
	if err == nil {
		return dataDir, nil
	}
	if !errors.Is(err, os.ErrPermission) {
		return "", errors.Wrapf(err, "unable to create data folder %s", dataDir)
	}

	// Permission denied, try the user's home directory instead
	homeDir, herr := os.UserHomeDir()
	if herr != nil || homeDir == "" {
		return "", errors.Wrap(err, "unable to get home directory")
	}
	fallback := filepath.Join(homeDir, defaultDataDirName)
	if err := os.MkdirAll(fallback, 0755); err != nil {
		return "", errors.Wrapf(err, "unable to create data folder %s", fallback)
	}
	return fallback, nil
}

// IsEndpointConfigured reports whether endpoint looks like a deployed
// spreadsheet endpoint rather than an empty or template value.
func IsEndpointConfigured(endpoint string) bool {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" || strings.Contains(endpoint, EndpointPlaceholder) {
		return false
	}
	if strings.HasPrefix(endpoint, ScriptURLPrefix) {
		return true
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
