package audit

import "time"

// Operation names the decoder entry point that was exercised.
type Operation string

const (
	OperationDecode   Operation = "decode"
	OperationValidate Operation = "validate"
	OperationCheck    Operation = "check"
)

// Event records one validation attempt. The raw NID is deliberately absent:
// a national ID identifies a person, and the audit trail must not become a
// PII store. Outcome carries "ok" or the rejection kind instead.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Country   string    `json:"country"`
	Operation Operation `json:"operation"`
	Outcome   string    `json:"outcome"`
	ClientIP  string    `json:"client_ip,omitempty"`
	Device    string    `json:"device,omitempty"`
}

// OutcomeOK marks a successful validation.
const OutcomeOK = "ok"
