package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/app"
	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "reading-log",
		Short: "Reading Log keeps books and memorable sentences in a spreadsheet",
		Long: `Reading Log catalogs books and the sentences worth remembering from them.
The collection lives in a spreadsheet behind a web endpoint; set endpoint_url
in the config file or READINGLOG_ENDPOINT_URL, or run "reading-log serve" for a
local backend.`,
		Version:       version.GetCurrentVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.GetConfig(cfgFile); err != nil {
				return err
			}
			if logLevel != "" {
				config.Opts.LogLevel = logLevel
			}
			log.Logger = log.NewLogger()
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// openSession connects to the configured endpoint and loads the collection.
func openSession(ctx context.Context) (*app.Service, error) {
	s, err := app.NewFromOptions(config.Opts)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func httpTimeout() time.Duration {
	return time.Duration(config.Opts.Timeout) * time.Second
}

// execute runs the command tree and returns the process exit code. The
// logger is swapped in once config loads, so the current one is synced here
// rather than deferred from main.
func execute() int {
	err := rootCmd.Execute()
	if err != nil {
		log.Debug("Command failed", zap.Error(err))
	}
	_ = log.Logger.Sync()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute())
}
