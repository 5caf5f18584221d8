package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fieldSeparator = "; "

// Templates use {field} for the json name and {param} for the tag argument.
var messages = map[string]string{
	"required":    "{field} is required",
	"email":       "{field} must be a valid email address",
	"oneof":       "{field} must be one of {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"max":         "{field} must be less than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"nefield":     "{field} must differ from {param}",
	"empty":       "{field} must be empty",
	"phone":       "{field} must be a 10 digit phone number",
	"usstate":     "{field} must be a two letter US state code",
	"refnum":      "{field} must be 4 to 20 letters, digits or dashes",
	"hhmm":        "{field} must be a 24h time like 0830",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// describe renders one field error. Or-combined tags such as "hhmm|eq=work_in" use the first alternative.
func describe(fieldErr val.FieldError) string {
	tag, _, _ := strings.Cut(fieldErr.Tag(), "|")

	template, ok := messages[tag]
	if !ok {
		return fieldErr.Error()
	}

	param := fieldErr.Param()
	if tag == "oneof" || tag == "mimetypes" {
		param = strings.Join(strings.Fields(param), ", ")
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", param).Replace(template)
}

// message joins every field error so a form can be fixed in one round trip.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, describe(fieldErr))
	}

	return strings.Join(parts, fieldSeparator)
}
