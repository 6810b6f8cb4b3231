package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is one audit entry spanning a single checkout-to-return
// interval. ReturnedAt is nil while the checkout is still open.
// Records are appended at checkout and closed at return; they are never
// edited otherwise and never deleted.
type HistoryRecord struct {
	ID           uuid.UUID
	ToolID       uuid.UUID
	UserID       uuid.UUID
	ToolName     string // joined for presentation
	UserName     string // joined for presentation
	CheckedOutAt time.Time
	ReturnedAt   *time.Time
}

// IsOpen reports whether the record denotes a checkout that has not been
// returned yet.
func (r *HistoryRecord) IsOpen() bool {
	return r.ReturnedAt == nil
}
