package v1 // import "github.com/herhimstory-source/Reading-Log/internal/api/v1"

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/herhimstory-source/Reading-Log/internal/sheetdb"
)

// ExecPath mirrors the path of a deployed spreadsheet script, so a client
// can point at either backend unchanged.
const ExecPath = "/exec"

type Handler struct {
	db *sheetdb.DB
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(db *sheetdb.DB) *Handler {
	return &Handler{db: db}
}

func Server(router *mux.Router, handler *Handler) {
	router.HandleFunc(ExecPath, handler.fetchAll).Methods(http.MethodGet)
	router.HandleFunc(ExecPath, handler.dispatch).Methods(http.MethodPost)
}
