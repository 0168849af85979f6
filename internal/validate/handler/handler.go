// Package handler wires the validation endpoints to the validation service.
// It owns the translation between the decoder error taxonomy and the wire
// error codes; nothing is lost in either direction.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"verid/pkg/nid"
	"verid/pkg/nid/albania"

	dErrors "verid/pkg/domain-errors"
	"verid/pkg/platform/httputil"
	"verid/pkg/requestcontext"
)

// Service defines the validation operations the handler depends on.
type Service interface {
	DecodeAlbania(ctx context.Context, code string) (albania.Info, error)
	ValidateAlbania(ctx context.Context, code string) error
	ValidateKosovo(ctx context.Context, code string) error
}

// Handler exposes the validation endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/nid/albania/decode", h.HandleDecodeAlbania)
	r.Post("/nid/albania/validate", h.HandleValidateAlbania)
	r.Post("/nid/kosovo/validate", h.HandleValidateKosovo)
}

// HandleDecodeAlbania handles POST /nid/albania/decode.
func (h *Handler) HandleDecodeAlbania(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	info, err := h.service.DecodeAlbania(ctx, req.NID)
	if err != nil {
		httputil.WriteError(w, toDomainError(err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromInfo("albania", info))
}

// HandleValidateAlbania handles POST /nid/albania/validate.
func (h *Handler) HandleValidateAlbania(w http.ResponseWriter, r *http.Request) {
	h.handleValidate(w, r, h.service.ValidateAlbania)
}

// HandleValidateKosovo handles POST /nid/kosovo/validate.
func (h *Handler) HandleValidateKosovo(w http.ResponseWriter, r *http.Request) {
	h.handleValidate(w, r, h.service.ValidateKosovo)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request, validate func(context.Context, string) error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := validate(ctx, req.NID); err != nil {
		httputil.WriteError(w, toDomainError(err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{Valid: true})
}

// toDomainError maps the decoder error taxonomy onto wire error codes.
func toDomainError(err error) error {
	kind, ok := nid.KindOf(err)
	if !ok {
		return dErrors.New(dErrors.CodeInternal, "")
	}

	var code dErrors.Code
	switch kind {
	case nid.KindFormat:
		code = dErrors.CodeFormatError
	case nid.KindChecksum:
		code = dErrors.CodeChecksumError
	case nid.KindInvalidDate:
		code = dErrors.CodeInvalidDate
	default:
		code = dErrors.CodeInternal
	}
	return dErrors.New(code, err.Error())
}
