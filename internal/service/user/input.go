package user

import (
	"github.com/makerclub/toolroom/internal/domain"
)

// CreateInput holds parameters for the administrative create operation.
type CreateInput struct {
	Name     string
	Team     *string
	Password string
	Role     domain.Role
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Team != nil && len(*i.Team) > 100 {
		errs = append(errs, domain.FieldError{Field: "team", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 4 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the administrative update operation.
type UpdateInput struct {
	Name     *string
	Team     *string
	Role     *domain.Role
	Password *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Team != nil && len(*i.Team) > 100 {
		errs = append(errs, domain.FieldError{Field: "team", Message: "too long"})
	}

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if i.Password != nil {
		if len(*i.Password) < 4 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
		} else if len(*i.Password) > 72 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if i.Name == nil && i.Team == nil && i.Role == nil && i.Password == nil {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
