package notification

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"

	"github.com/relaykit/mock-provider/internal/errors"
)

// FieldViolation describes a single schema rule a payload field failed.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the discriminated outcome of validating a payload against a
// Schema. Validation failure is a normal outcome communicated through
// Violations, never through a Go error.
type Result struct {
	Valid      bool
	Value      any // normalized value on success: *Notification, *Recipient or *Content
	Violations []FieldViolation
}

// Notification returns the normalized notification, or nil when the result
// is invalid or came from a different schema.
func (r *Result) Notification() *Notification {
	n, _ := r.Value.(*Notification)
	return n
}

// Recipient returns the normalized recipient, or nil.
func (r *Result) Recipient() *Recipient {
	rec, _ := r.Value.(*Recipient)
	return rec
}

// Content returns the normalized content, or nil.
func (r *Result) Content() *Content {
	c, _ := r.Value.(*Content)
	return c
}

// Schema validates loosely typed payloads into a normalized typed value.
// Schemas are stateless and safe to use in any provider lifecycle state.
// An optional observe callback receives each violating field; providers use
// it to feed their validation-failure metrics.
type Schema struct {
	name      string
	newTarget func() any
	observe   func(field string)
}

// Name returns the schema name.
func (s Schema) Name() string { return s.name }

// NotificationSchema returns the validator for complete notification
// payloads. The whole payload is rejected when any field violates a rule;
// there is no partial acceptance.
func NotificationSchema() Schema {
	return Schema{name: "notification", newTarget: func() any { return &Notification{} }}
}

// RecipientSchema returns the validator for recipient payloads.
func RecipientSchema() Schema {
	return Schema{name: "recipient", newTarget: func() any { return &Recipient{} }}
}

// ContentSchema returns the validator for content payloads.
func ContentSchema() Schema {
	return Schema{name: "content", newTarget: func() any { return &Content{} }}
}

// Validate decodes input into the schema's typed value and applies the
// declared field rules. Timestamps supplied as RFC 3339 strings and UUIDs
// supplied as strings are coerced to their canonical types in the
// normalized value.
func (s Schema) Validate(input map[string]any) *Result {
	target := s.newTarget()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "json",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			stringToUUIDHookFunc(),
		),
	})
	if err != nil {
		return s.invalid([]FieldViolation{{Rule: "internal", Message: err.Error()}})
	}

	if err := decoder.Decode(input); err != nil {
		return s.invalid(violationsFromDecodeError(err))
	}

	if err := validate.Struct(target); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return s.invalid(violationsFromRuleErrors(verrs))
		}
		return s.invalid([]FieldViolation{{Rule: "internal", Message: err.Error()}})
	}

	return &Result{Valid: true, Value: target}
}

// invalid builds a failed Result and reports each violating field to the
// schema's observer, when one is attached.
func (s Schema) invalid(violations []FieldViolation) *Result {
	if s.observe != nil {
		for _, v := range violations {
			s.observe(v.Field)
		}
	}
	return &Result{Violations: violations}
}

// validate is the shared validator instance. Field names in violations use
// the wire (json tag) names, not the Go struct names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// The rule is built from ChannelMock so the tag cannot drift from the
	// constant.
	v.RegisterAlias("known_channel", "eq="+ChannelMock)
	return v
}

// stringToUUIDHookFunc decodes string values into uuid.UUID fields.
func stringToUUIDHookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(uuid.UUID{}) {
			return data, nil
		}
		return uuid.Parse(data.(string))
	}
}

// violationsFromDecodeError turns mapstructure's aggregated decode error
// into per-field violations. Each entry is prefixed "* " and names the
// offending field in single quotes.
func violationsFromDecodeError(err error) []FieldViolation {
	var violations []FieldViolation
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "* ") {
			continue
		}
		line = strings.TrimPrefix(line, "* ")
		violations = append(violations, FieldViolation{
			Field:   quotedField(line),
			Rule:    "type",
			Message: line,
		})
	}
	if len(violations) == 0 {
		violations = append(violations, FieldViolation{Rule: "type", Message: err.Error()})
	}
	return violations
}

// quotedField extracts the first single-quoted token from a decode error line.
func quotedField(line string) string {
	start := strings.Index(line, "'")
	if start < 0 {
		return ""
	}
	end := strings.Index(line[start+1:], "'")
	if end < 0 {
		return ""
	}
	return line[start+1 : start+1+end]
}

func violationsFromRuleErrors(verrs validator.ValidationErrors) []FieldViolation {
	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		// Drop the leading type name so fields read as wire paths,
		// e.g. recipient.user_id
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		violations = append(violations, FieldViolation{
			Field:   field,
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "eq":
		return fmt.Sprintf("must equal %q", fe.Param())
	case "known_channel":
		return fmt.Sprintf("must equal %q", ChannelMock)
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
