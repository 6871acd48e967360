// Package validation implements the declarative request-validation
// pipeline: strict JSON decoding (unknown fields rejected), input
// normalization, and schema validation with ordered, field-level error
// messages. Handlers only ever see the normalized, typed payload.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Request is implemented by every request schema: normalization runs
// after decoding and before validation, so rules see canonical input.
type Request interface {
	Normalize()
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance with the custom
// rules registered.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Both rules operate on strings only; declaring them on another
		// kind is a programming error surfaced at validation time.
		if err := validate.RegisterValidation("passwordcomplexity", passwordComplexity); err != nil {
			panic(fmt.Sprintf("registering passwordcomplexity rule: %v", err))
		}
		if err := validate.RegisterValidation("containsalpha", containsAlpha); err != nil {
			panic(fmt.Sprintf("registering containsalpha rule: %v", err))
		}
	})

	return validate
}

// passwordComplexity enforces the registration password policy: at least
// 8 characters with at least one lowercase letter, one uppercase letter,
// one digit, and one symbol. Equivalent to the pattern
// (?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[^A-Za-z0-9]).{8,} — Go's regexp
// has no lookahead, so the classes are checked independently.
func passwordComplexity(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

// containsAlpha reports whether the field contains at least one letter.
func containsAlpha(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}

// DecodeAndValidate decodes a JSON request body into dst, normalizes it,
// and validates it against the schema declared on dst's struct tags.
//
// The decode is strict: any key not declared on the schema fails
// validation, so unexpected fields can never slip through to a handler.
//
// On success it returns nil and dst holds the normalized payload. On
// failure it returns the ordered list of client-facing messages — one
// per failing field, all at once, never a partial result.
func DecodeAndValidate(body io.Reader, dst Request) []string {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if field, ok := unknownField(err); ok {
			return []string{fmt.Sprintf("Unrecognized key(s) in object: '%s'", field)}
		}
		return []string{"Invalid JSON was passed"}
	}

	dst.Normalize()

	if err := getValidator().Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return []string{"Invalid request payload"}
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, messageFor(fe))
		}
		return messages
	}

	return nil
}

// messageFor resolves the client-facing message for a single failed rule.
func messageFor(fe validator.FieldError) string {
	key := fmt.Sprintf("%s.%s", fe.StructNamespace(), fe.Tag())
	if msg, ok := fieldErrorMessages[key]; ok {
		return msg
	}

	return fmt.Sprintf("%s is invalid", fe.StructField())
}

// unknownField extracts the offending key name from encoding/json's
// unknown-field error ("json: unknown field \"x\"").
func unknownField(err error) (string, bool) {
	const marker = `unknown field "`

	msg := err.Error()
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "", false
	}

	field := msg[idx+len(marker):]
	field = strings.TrimSuffix(field, `"`)
	return field, true
}
