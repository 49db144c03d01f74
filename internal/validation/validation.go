// Package validation checks word payloads and ids before they reach storage.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"wordquiz/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Rule names reported in domain.FieldError
const (
	RuleRequired = "required"
	RulePattern  = "pattern"
	RuleType     = "type"
	RuleMin      = "min"
)

var (
	// EnglishPattern allows ASCII letters only
	EnglishPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	// FinnishPattern allows ASCII letters plus the Finnish vowels
	FinnishPattern = regexp.MustCompile(`^[a-zA-ZäåöÄÅÖ]+$`)
)

var messages = map[string]string{
	"english": "Invalid value for English, must contain only letters",
	"finnish": "Invalid value for Finnish, must contain only letters",
	"id":      "Invalid value for id, must be a positive integer",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "english", EnglishPattern)
	mustRegister(v, "finnish", FinnishPattern)

	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Message returns the client-facing message for a field
func Message(path string) string {
	return messages[path]
}

// NewFieldError builds a field error with the shared message for path
func NewFieldError(path, rule string, value any) domain.FieldError {
	return domain.FieldError{
		Type:  "field",
		Value: value,
		Msg:   Message(path),
		Path:  path,
		Rule:  rule,
	}
}

// ValidateWord checks english and finnish against their letter patterns.
// Returns nil when the word is valid.
func ValidateWord(word domain.Word) []domain.FieldError {
	return toFieldErrors(validate.Struct(word), "")
}

// ValidateID checks that id is at least 1.
// Returns nil when the id is valid.
func ValidateID(id int64) []domain.FieldError {
	return toFieldErrors(validate.Var(id, "min=1"), "id")
}

func toFieldErrors(err error, path string) []domain.FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Type: "field", Msg: err.Error(), Path: path, Rule: "invalid"}}
	}

	result := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = path
		}
		result = append(result, NewFieldError(field, ruleFor(fe.Tag()), fe.Value()))
	}
	return result
}

func ruleFor(tag string) string {
	switch tag {
	case "required":
		return RuleRequired
	case "min":
		return RuleMin
	default:
		return RulePattern
	}
}
