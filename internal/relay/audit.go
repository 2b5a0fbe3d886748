package relay

import (
	"context"
	"time"
)

// BlockedEvent is published for every request the relay refuses, forming
// the audit trail consumed by cmd/audit_worker.
type BlockedEvent struct {
	Time      time.Time `json:"time"`
	RequestID string    `json:"request_id"`
	ClientIP  string    `json:"client_ip"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Source    string    `json:"source"` // "query" or "form"
	Param     string    `json:"param"`
	Value     string    `json:"value"`
}

// AuditPublisher is satisfied by helpers.RabbitPublisher. A nil publisher
// disables the audit trail.
type AuditPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}
