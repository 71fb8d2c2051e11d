package domain

import "fmt"

// APIError is the problem+json body returned on every failed call
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
	// Current carries the authoritative record after a failed or conflicting update
	Current interface{} `json:"current,omitempty"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// Problem types. The back office switches on these to decide between a retry, a reload
// of the record or a field highlight.
const (
	ErrorTypeValidation   = "validation_error"
	ErrorTypeNotFound     = "not_found"
	ErrorTypeBadRequest   = "bad_request"
	ErrorTypeConflict     = "conflict"
	ErrorTypeUnauthorized = "unauthorized"
	ErrorTypeForbidden    = "forbidden"
	ErrorTypeInternal     = "internal_error"
	ErrorTypeRateLimited  = "rate_limited"

	ErrorTypeUpload       = "upload_error"
	ErrorTypeDatabase     = "database_error"
	ErrorTypeComposition  = "composition_error"
	ErrorTypeNotification = "notification_error"
)

// validationMessages covers the tags used on the intake and admin payloads. A %s verb
// receives the tag parameter.
var validationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Must be at most %s characters",
	"min":      "Must be at least %s characters",
	"gte":      "Must be %s or greater",
	"lte":      "Must be %s or less",
	"oneof":    "Must be one of: %s",
	"datetime": "Must be a date in YYYY-MM-DD format",
	"hexcolor": "Must be a hex color such as #3b82f6",
	"dive":     "Contains an invalid element",
}

// fallbacks used when a parameterised tag is reported without its parameter
var unparameterised = map[string]string{
	"max":   "Exceeds maximum length",
	"min":   "Below minimum length",
	"gte":   "Must not be negative",
	"lte":   "Exceeds the maximum value",
	"oneof": "Must be one of the allowed values",
}

// ValidationMessage renders the message for a failed tag and its parameter
func ValidationMessage(tag, param string) string {
	msg, ok := validationMessages[tag]
	if !ok {
		return "Validation failed: " + tag
	}
	if param == "" {
		if plain, ok := unparameterised[tag]; ok {
			return plain
		}
		return msg
	}
	if tag == "max" || tag == "min" || tag == "gte" || tag == "lte" || tag == "oneof" {
		return fmt.Sprintf(msg, param)
	}
	return msg
}

// GetValidationMessage returns the message for a tag that carries no parameter
func GetValidationMessage(tag string) string {
	return ValidationMessage(tag, "")
}
