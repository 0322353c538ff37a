package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewRequestValidator builds the validator used for inbound request structs.
// The notblank rule rejects whitespace-only strings, which "required" alone
// lets through.
func NewRequestValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return nil, err
	}
	return v, nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
