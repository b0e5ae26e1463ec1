package server // import "github.com/herhimstory-source/Reading-Log/internal/server"

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	v1 "github.com/herhimstory-source/Reading-Log/internal/api/v1"
	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/http/response"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/sheetdb"
	"github.com/herhimstory-source/Reading-Log/internal/version"
	"go.uber.org/zap"
)

// StartServer starts the local backend on the configured host and port.
// Listen errors are delivered on the returned channel.
func StartServer(db *sheetdb.DB) (*http.Server, <-chan error) {
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Opts.Host, config.Opts.Port),
		Handler:           setupHandler(db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	return server, errc
}

func setupHandler(db *sheetdb.DB) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware)
	router.Use(handleCORS)
	// CORS preflight requests need a matching route to reach the middleware.
	router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, r, nil)
	})

	v1.Server(router, v1.NewHandler(db))

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "Database Connection Error", http.StatusInternalServerError)
			return
		}

		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}
