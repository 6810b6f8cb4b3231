package tool

import (
	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

// CreateInput holds parameters for the create operation.
type CreateInput struct {
	Name string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the administrative update operation.
// Status and holder changes bypass the lifecycle engine and are meant for
// corrections; custody coupling is still enforced.
type UpdateInput struct {
	Name        *string
	Status      *domain.ToolStatus
	Holder      *uuid.UUID
	ClearHolder bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if i.Holder != nil && i.ClearHolder {
		errs = append(errs, domain.FieldError{Field: "holder_id", Message: "cannot both set and clear"})
	}

	if i.Name == nil && i.Status == nil && i.Holder == nil && !i.ClearHolder {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
