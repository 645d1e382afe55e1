package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/nullable"

	"github.com/console-catalog/catalog-api/internal/app/branding"
	"github.com/console-catalog/catalog-api/internal/app/catalog"
	"github.com/console-catalog/catalog-api/internal/platform/logger"
)

// ErrorResponse is the JSON envelope of every error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code      string                            `json:"code"`
	Message   string                            `json:"message"`
	Details   nullable.Nullable[map[string]any] `json:"details,omitempty"`
	RequestID nullable.Nullable[string]         `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, message string, details map[string]any) {
	var er ErrorResponse
	er.Error.Code = code
	er.Error.Message = message
	if details != nil {
		er.Error.Details = nullable.NewNullableWithValue(details)
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		er.Error.RequestID = nullable.NewNullableWithValue(rid)
	}

	writeJSON(w, status, er)
}

// writeAppError maps application errors to their status; anything else is a 500.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	if ce := (*catalog.Error)(nil); errors.As(err, &ce) {
		writeError(w, r, ce.Status, ce.Code, ce.Message, ce.Details)
		return
	}
	if be := (*branding.Error)(nil); errors.As(err, &be) {
		writeError(w, r, be.Status, be.Code, be.Message, nil)
		return
	}
	logger.FromContext(r.Context()).Error("request failed", "err", err)
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
