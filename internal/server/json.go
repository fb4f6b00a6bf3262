package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/symbol"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("json encode failed", "error", err)
	}
}

type errResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// writeError maps err to a status code and writes it as a JSON error body.
// Internal errors are logged and reported without detail.
func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorBody("internal error"))
		return
	}

	var ape *symbol.AttachmentPointError
	msg := apperr.UserMessage(err)
	if errors.As(err, &ape) {
		msg = ape.Error()
	}
	writeJSON(w, status, errResponse{Error: msg, Code: string(apperr.GetCode(err))})
}

func statusFor(err error) int {
	switch apperr.GetCode(err).Kind() {
	case apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
