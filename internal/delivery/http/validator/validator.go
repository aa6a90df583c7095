// Package validator adapts go-playground/validator to echo's Validator hook
// and maps violations into the field-keyed validation error details.
package validator

import (
	"greenmarket/internal/domain/entity"
	domainerrors "greenmarket/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator with the domain's custom rules registered.
func New() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "category" restricts a string to the closed merchant-category set.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator. Structural violations come back as a
// ValidationError carrying one FieldViolation per failed rule.
func (ev *echoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return errors.Wrap(domainerrors.ErrInternalError, "request shape is not validatable")
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "request validation")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fe.Namespace(),
			Rule:    fe.Tag(),
			Message: fe.Error(),
		})
	}

	return errors.Wrap(
		domainerrors.ErrValidationFailed.WithDetails(violations),
		"request validation",
	)
}
