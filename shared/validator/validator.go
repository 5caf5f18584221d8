package validator

import (
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	referenceNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{3,19}$`)
	clockPattern           = regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)
	nonDigitPattern        = regexp.MustCompile(`\D`)
)

var usStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS",
	"KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC",
	"ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

func fileHeader(field val.FieldLevel) (*multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return &file, true
	case *multipart.FileHeader:
		return file, file != nil
	}

	return nil, false
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	allowed := strings.Split(field.Param(), " ")
	if slices.Contains(allowed, file.Header.Get(constant.RequestHeaderContentType)) {
		return true
	}

	// browsers send csv uploads as text/plain or application/octet-stream
	extension := strings.ToLower(filepath.Ext(file.Filename))

	return (extension == ".csv" && slices.Contains(allowed, constant.ContentTypeCSV)) ||
		(extension == ".xlsx" && slices.Contains(allowed, constant.ContentTypeXLSX))
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return file.Size <= maxSizeBytes
}

// NormalizePhone strips formatting and a leading country code 1.
func NormalizePhone(phone string) string {
	digits := nonDigitPattern.ReplaceAllString(phone, constant.Empty)
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}

	return digits
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return len(NormalizePhone(field.Field().String())) == 10
}

func registerStateValidation(field val.FieldLevel) bool {
	return slices.Contains(usStates, strings.ToUpper(field.Field().String()))
}

func registerReferenceNumberValidation(field val.FieldLevel) bool {
	return referenceNumberPattern.MatchString(field.Field().String())
}

// IsClock reports whether value is a 24h HHMM clock like "0830".
func IsClock(value string) bool {
	return clockPattern.MatchString(value)
}

func registerClockValidation(field val.FieldLevel) bool {
	return IsClock(field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"phone":       registerPhoneValidation,
		"usstate":     registerStateValidation,
		"refnum":      registerReferenceNumberValidation,
		"hhmm":        registerClockValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
