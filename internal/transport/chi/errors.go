package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/runstore/internal/domain"
	logpkg "github.com/kailas-cloud/runstore/internal/logger"
	gen "github.com/kailas-cloud/runstore/internal/transport/generated"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		notFoundHandler,
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument),
		sentinelHandler(domain.ErrUnimplemented, http.StatusNotImplemented, gen.ErrorResponseCodeUnimplemented),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, gen.ErrorResponseCodeAlreadyExists),
	}
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, clientMessage(err, sentinel))
		return true
	}
}

// notFoundHandler names the missing resource when the error carries it.
func notFoundHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrNotFound) {
		return false
	}
	msg := domain.ErrNotFound.Error()
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		msg = nf.Error()
	}
	writeError(w, http.StatusNotFound, gen.ErrorResponseCodeNotFound, msg)
	return true
}

// clientMessage strips operation prefixes so the message starts at the sentinel.
func clientMessage(err error, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("request rejected", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}

// ParamErrorHandler answers path parameters the router could not bind.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{Code: code, Message: message})
}
