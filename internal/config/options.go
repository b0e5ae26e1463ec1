package config

import (
	"os"
	"path/filepath"
)

const (
	defaultLogFile           = "reading-log.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultEndpointURL       = ""
	defaultTimeout           = 30
	defaultImportConcurrency = 8
	defaultLocale            = "en"
	defaultDateLayout        = "1/2/2006"
	defaultGeminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultCoverModel        = "imagen-4.0-generate-001"
	defaultCoverWebPQuality  = 75
	defaultBooksAPIURL       = "https://www.googleapis.com/books/v1"
	defaultPort              = 8080
	defaultHost              = "127.0.0.1"
	defaultDSNName           = "reading-log.db"
	defaultDataDirName       = ".reading-log"

	// EndpointPlaceholder is the value shipped in sample configs before the
	// user deploys their own endpoint.
	EndpointPlaceholder = "YOUR_GOOGLE_APPS_SCRIPT_WEB_APP_URL_HERE"
	// ScriptURLPrefix is the prefix of hosted spreadsheet script deployments.
	ScriptURLPrefix = "https://script.google.com/macros/s/"
)

// viper decodes through mapstructure, so the field tags must be mapstructure
// tags rather than json tags.
type Options struct {
	// LogFile is the file to write logs to, relative to Data unless absolute
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size in megabytes of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`

	// EndpointURL is the remote spreadsheet endpoint holding Books and Sentences
	EndpointURL string `mapstructure:"endpoint_url"`
	// Timeout is the HTTP client timeout in seconds for remote calls
	Timeout int `mapstructure:"timeout"`
	// ImportConcurrency caps the in-flight creates during an import replay, 0 means no cap
	ImportConcurrency int `mapstructure:"import_concurrency"`
	// Locale drives title and author collation
	Locale string `mapstructure:"locale"`
	// DateLayout formats the "Date Added" column on export
	DateLayout string `mapstructure:"date_layout"`

	GeminiAPIKey     string `mapstructure:"gemini_api_key"`
	GeminiBaseURL    string `mapstructure:"gemini_base_url"`
	CoverModel       string `mapstructure:"cover_model"`
	CoverWebPQuality int    `mapstructure:"cover_webp_quality"`
	BooksAPIURL      string `mapstructure:"books_api_url"`

	// For the local backend
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
	DSN  string `mapstructure:"dsn_uri"`
	// Data is the directory to store data, exports and logs
	Data string `mapstructure:"data"`
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		EndpointURL:       defaultEndpointURL,
		Timeout:           defaultTimeout,
		ImportConcurrency: defaultImportConcurrency,
		Locale:            defaultLocale,
		DateLayout:        defaultDateLayout,
		GeminiBaseURL:     defaultGeminiBaseURL,
		CoverModel:        defaultCoverModel,
		CoverWebPQuality:  defaultCoverWebPQuality,
		BooksAPIURL:       defaultBooksAPIURL,
		Port:              defaultPort,
		Host:              defaultHost,
		Data:              defaultDataDir(),
	}
	return Opts
}

// defaults mirrors GetDefaultOptions as a viper key map so that environment
// variables are recognised for every key.
func defaults(o *Options) map[string]any {
	return map[string]any{
		"log_file":             o.LogFile,
		"log_level":            o.LogLevel,
		"log_file_max_size":    o.LogFileMaxSize,
		"log_file_max_backups": o.LogFileMaxBackups,
		"log_file_max_age":     o.LogFileMaxAge,
		"log_compress":         o.LogCompress,
		"endpoint_url":         o.EndpointURL,
		"timeout":              o.Timeout,
		"import_concurrency":   o.ImportConcurrency,
		"locale":               o.Locale,
		"date_layout":          o.DateLayout,
		"gemini_api_key":       o.GeminiAPIKey,
		"gemini_base_url":      o.GeminiBaseURL,
		"cover_model":          o.CoverModel,
		"cover_webp_quality":   o.CoverWebPQuality,
		"books_api_url":        o.BooksAPIURL,
		"port":                 o.Port,
		"host":                 o.Host,
		"dsn_uri":              o.DSN,
		"data":                 o.Data,
	}
}
