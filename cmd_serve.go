package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/server"
	"github.com/herhimstory-source/Reading-Log/internal/sheetdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local backend compatible with the spreadsheet endpoint",
	Long: `Run a local backend that speaks the same GET/POST /exec contract as the
hosted spreadsheet script, storing data in sqlite at dsn_uri. Point
endpoint_url at http://<host>:<port>/exec to use it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := sheetdb.Open(config.Opts.DSN)
		if err != nil {
			return errors.Wrap(err, "error connecting to database")
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return errors.Wrap(err, "error migrating database")
		}
		if err := db.PingContext(ctx); err != nil {
			return errors.Wrap(err, "error pinging database")
		}

		srv, errc := server.StartServer(db)
		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
	},
}
