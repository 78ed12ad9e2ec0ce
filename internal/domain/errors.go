package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrDataUnavailable marks a signal input that could not be fetched or
// computed. It degrades the affected factor/instrument only and must never
// abort a whole signal run.
var ErrDataUnavailable = errors.New("data unavailable")

type SchemaViolation struct {
	Row    int    `json:"row"` // 0 for file-level problems
	Column string `json:"column,omitempty"`
	Detail string `json:"detail"`
}

// SchemaError reports every violation found in an import, not just the first,
// so the caller can fix the whole file in one pass.
type SchemaError struct {
	Violations []SchemaViolation
}

func (e SchemaError) Error() string {
	details := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Row > 0 {
			details = append(details, fmt.Sprintf("row %d: %s", v.Row, v.Detail))
		} else {
			details = append(details, v.Detail)
		}
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(details, "; "))
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConstraintViolationError rejects a commit. It carries the complete
// validation result; nothing is persisted when it is returned.
type ConstraintViolationError struct {
	Result ValidationResult
}

func (e ConstraintViolationError) Error() string {
	details := make([]string, 0, len(e.Result.Violations))
	for _, v := range e.Result.Violations {
		details = append(details, fmt.Sprintf("%s: %s", v.Rule, v.Detail))
	}
	return fmt.Sprintf("constraint validation failed: %s", strings.Join(details, "; "))
}

// ConcurrentModificationError means a commit was based on a version that is no
// longer the latest. The caller should re-fetch and retry; the store never
// silently overwrites.
type ConcurrentModificationError struct {
	BasketID      uuid.UUID
	BaseVersion   int32
	LatestVersion int32
}

func (e ConcurrentModificationError) Error() string {
	return fmt.Sprintf(
		"basket %s was committed to since version %d (latest is %d) - re-fetch and retry",
		e.BasketID, e.BaseVersion, e.LatestVersion,
	)
}
