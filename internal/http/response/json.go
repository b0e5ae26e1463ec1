package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/herhimstory-source/Reading-Log/internal/http/request"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"go.uber.org/zap"
)

const contentTypeHeader = `application/json`

const (
	statusSuccess = "success"
	statusError   = "error"
)

type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
}

// OK sends body as JSON with a 200 status code.
func OK(w http.ResponseWriter, r *http.Request, body interface{}) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithBody(toJSON(body))
	builder.Write()
}

// Success sends a success envelope carrying message and optional data.
func Success(w http.ResponseWriter, r *http.Request, message string, data interface{}) {
	OK(w, r, envelope{Status: statusSuccess, Message: message, Data: data})
}

// ServerError sends an internal error to the client.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error(http.StatusText(http.StatusInternalServerError),
		zap.Error(err),
		zap.String("client_ip", request.ClientIP(r)),
		zap.String("request.method", r.Method),
		zap.String("request.uri", r.RequestURI),
		zap.String("request.user_agent", r.UserAgent()),
		zap.Int("response.status_code", http.StatusInternalServerError),
	)

	writeError(w, r, http.StatusInternalServerError, "Server error", err)
}

// BadRequest sends a bad request error to the client.
func BadRequest(w http.ResponseWriter, r *http.Request, err error) {
	log.Warn(http.StatusText(http.StatusBadRequest),
		zap.Error(err),
		zap.String("client_ip", request.ClientIP(r)),
		zap.String("request.method", r.Method),
		zap.String("request.uri", r.RequestURI),
		zap.String("request.user_agent", r.UserAgent()),
		zap.Int("response.status_code", http.StatusBadRequest),
	)

	writeError(w, r, http.StatusBadRequest, err.Error(), err)
}

// NotFound sends a not found error to the client. A nil err means the route
// itself is unknown.
func NotFound(w http.ResponseWriter, r *http.Request, err error) {
	log.Warn(http.StatusText(http.StatusNotFound),
		zap.Error(err),
		zap.String("client_ip", request.ClientIP(r)),
		zap.String("request.method", r.Method),
		zap.String("request.uri", r.RequestURI),
		zap.String("request.user_agent", r.UserAgent()),
		zap.Int("response.status_code", http.StatusNotFound),
	)

	if err == nil {
		err = errors.New("resource not found")
	}
	writeError(w, r, http.StatusNotFound, err.Error(), err)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	builder := New(w, r)
	builder.WithStatus(status)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithBody(toJSON(envelope{Status: statusError, Message: message, Error: &errorBody{Message: err.Error()}}))
	builder.Write()
}

func toJSON(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("Unable to marshal JSON response", zap.Any("error", err))
		return []byte("")
	}

	return b
}
