package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mortgage-affordability/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

// calculation adapts a service method to a POST JSON endpoint.
func calculation[In, Out any](logger *slog.Logger, calc func(In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		var input In
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&input); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		result, err := calc(input)
		if err != nil {
			writeError(w, r, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger = logger.With("request_id", RequestID(r.Context()))

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		logger.Error("unexpected calculation error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	status := http.StatusBadRequest
	if oe.Kind == domain.KindTableConfig {
		status = http.StatusInternalServerError
		logger.Error("rate table misconfigured", "operation", oe.Op, "error", err)
	} else {
		logger.Debug("request rejected", "operation", oe.Op, "field", oe.Field)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: string(oe.Kind), Field: oe.Field})
}

// writeJSON encodes into a buffer first so encoding failures still produce a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
