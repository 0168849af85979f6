package handler

import (
	dErrors "verid/pkg/domain-errors"
)

// ValidateRequest is the body of every validation endpoint.
type ValidateRequest struct {
	NID string `json:"nid"`
}

// Validate rejects envelopes the decoders should never see. Length and
// alphabet checks belong to the decoders; this only guards the transport
// contract.
func (r ValidateRequest) Validate() error {
	if r.NID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "nid is required")
	}
	return nil
}
