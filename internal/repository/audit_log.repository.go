package repository

import (
	"basketdesk/internal/db/models/postgres/public/model"
	"basketdesk/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
)

// AuditLogRepository appends audit rows for state-changing operations.
// Writes happen inside the caller's commit transaction so the audit trail
// matches exactly what was persisted.
type AuditLogRepository interface {
	Add(tx qrm.Executable, eventType string, details string) error
}

type auditLogRepositoryHandler struct{}

func NewAuditLogRepository() AuditLogRepository {
	return auditLogRepositoryHandler{}
}

func (h auditLogRepositoryHandler) Add(tx qrm.Executable, eventType string, details string) error {
	query := table.AuditLog.
		INSERT(table.AuditLog.AllColumns).
		MODEL(model.AuditLog{
			EventTime: time.Now().UTC(),
			EventType: eventType,
			Details:   details,
		})

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to write audit log event %s: %w", eventType, err)
	}

	return nil
}
