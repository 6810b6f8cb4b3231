package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tool is a trackable physical asset owned by the club.
// Invariant: HolderID is non-nil exactly when Status is checked_out.
// Only the lifecycle service mutates the (Status, HolderID) pair outside
// of the administrative override path.
type Tool struct {
	ID         uuid.UUID
	Name       string
	Status     ToolStatus
	HolderID   *uuid.UUID
	HolderName *string // joined from users for presentation, not stored
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CustodyValid reports whether a (status, holder) pair satisfies the
// tool invariant.
func CustodyValid(status ToolStatus, holder *uuid.UUID) bool {
	return (status == ToolStatusCheckedOut) == (holder != nil)
}

// ToolPatch describes a partial administrative update of a tool.
// Nil fields are left unchanged. Setting Status without a consistent
// Holder is rejected by the tool service.
type ToolPatch struct {
	Name   *string
	Status *ToolStatus
	Holder *uuid.UUID
	// ClearHolder forces holder to NULL; needed because a nil Holder
	// means "unchanged".
	ClearHolder bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ToolPatch) IsEmpty() bool {
	return p.Name == nil && p.Status == nil && p.Holder == nil && !p.ClearHolder
}
