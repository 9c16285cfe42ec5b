package utils

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"forestdash/internal/shared/errors"
)

var (
	validate     *validator.Validate
	markupPolicy = bluemonday.StrictPolicy()
)

func init() {
	validate = validator.New()
	// DTOs carry gin-style `binding` tags for both code paths.
	validate.SetTagName("binding")
	registerValidations(validate)

	// gin's ShouldBindJSON runs its own validator instance.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerValidations(engine)
	}
}

func registerValidations(v *validator.Validate) {
	// Use JSON tag names for validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("nomarkup", noMarkup)
}

// noMarkup rejects strings that a strict HTML policy would alter.
func noMarkup(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !strings.ContainsAny(s, "<>") {
		return true
	}
	return markupPolicy.Sanitize(s) == s
}

// ValidateStruct validates a struct and returns a validation error naming
// every offending field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return TranslateBindError(err)
}

// TranslateBindError converts decoding and validation failures into an
// AppError of type validation_error. Other errors pass through unchanged.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fieldPath(fe))
			messages = append(messages, getFieldErrorMessage(fe))
		}
		return errors.NewFieldValidationError(fields, messages)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return errors.NewFieldValidationError(
			[]string{field},
			[]string{fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String())},
		)
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewValidationError("request body is not valid JSON", syntaxErr.Error())
	}

	if stderrors.Is(err, io.EOF) {
		return errors.NewValidationError("request body is required")
	}

	if field, ok := unknownField(err); ok {
		return errors.NewFieldValidationError(
			[]string{field},
			[]string{fmt.Sprintf("%s is not a writable field", field)},
		)
	}

	if errors.IsAppError(err) {
		return err
	}

	return errors.NewValidationError("invalid request body", err.Error())
}

// unknownField extracts the key from encoding/json's DisallowUnknownFields error.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

// fieldPath drops the top-level struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// BindJSON decodes a create body. Unknown fields are dropped; type and
// validation failures become validation errors.
func BindJSON(c *gin.Context, obj interface{}) error {
	return TranslateBindError(c.ShouldBindJSON(obj))
}

// BindPatchJSON decodes a partial update body. Unknown fields are rejected,
// at least one field must be present, and present fields are validated.
func BindPatchJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return errors.NewValidationError("request body is required")
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return errors.NewBadRequestError("failed to read request body")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(obj); err != nil {
		return TranslateBindError(err)
	}

	if !HasAnyField(obj) {
		return errors.NewValidationError("at least one writable field must be provided")
	}

	return ValidateStruct(obj)
}

// HasAnyField reports whether any pointer, slice or map field of the struct
// pointed to by obj is non-nil.
func HasAnyField(obj interface{}) bool {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if !f.IsNil() {
				return true
			}
		}
	}
	return false
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format %s", field, param)
	case "nomarkup":
		return fmt.Sprintf("%s must not contain HTML markup", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
