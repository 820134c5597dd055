package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/jmylchreest/brandlint/internal/security"
)

type handlerFunc = func(http.ResponseWriter, *http.Request)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// wrap adds panic recovery, no-cache headers and request logging to fn.
func (s *Server) wrap(fn handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			recErr := recover()
			if recErr == nil {
				return
			}
			s.logger.Error("panic in handler",
				"path", r.URL.Path,
				"panic", fmt.Sprintf("%v", recErr),
				"stack", string(debug.Stack()))
			writeError(w, http.StatusInternalServerError, fmt.Errorf("panic: %v", recErr))
		}()

		w.Header().Set(CacheControlHeaderKey, CacheControlHeaderNoCache)
		fn(w, r)

		s.logger.Debug("handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("error serializing response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set(ContentTypeHeaderKey, ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody reads a size-limited JSON request body into v. Unknown fields are
// rejected so that typos in role names do not pass silently.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) (int, error) {
	body := http.MaxBytesReader(w, r.Body, security.MaxThemeDocumentBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return http.StatusBadRequest, errors.New("invalid request body: trailing data after JSON value")
	}
	return http.StatusOK, nil
}

func notFound(w http.ResponseWriter, req *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", req.Method, req.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", req.Method))
}
