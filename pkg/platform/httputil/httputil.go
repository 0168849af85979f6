// Package httputil centralizes JSON encoding and domain error translation
// for HTTP handlers, keeping response envelopes consistent across endpoints.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	domainerrors "verid/pkg/domain-errors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the standard error envelope.
// Internal errors omit the description so infrastructure details never reach
// clients; every other code includes it.
func WriteError(w http.ResponseWriter, err error) {
	code := domainerrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != domainerrors.CodeInternal {
		if desc := domainerrors.DescriptionOf(err); desc != "" {
			body["error_description"] = desc
		}
	}
	WriteJSON(w, domainerrors.ToHTTPStatus(code), body)
}

// DecodeAndPrepare decodes the request body into T. On malformed JSON it
// logs, writes a bad_request envelope, and returns ok=false so the handler
// can return immediately.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "failed to decode request body",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return req, false
	}
	return req, true
}
