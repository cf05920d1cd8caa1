// Package schema holds the validation rules for spouse submissions.
//
// The rules are written once, as struct tags on SpouseInput. The server
// validates request bodies with them and the browser client receives the
// same rule table through Rules.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SpouseInput is the payload accepted by the create operation.
type SpouseInput struct {
	UserName   string `json:"userName" validate:"min=2" msg:"Username must be at least 2 characters"`
	SpouseName string `json:"spouseName" validate:"min=1" msg:"Spouse name is required"`
	ImageData  string `json:"imageData" validate:"min=1" msg:"Image is required"`
}

// Rule is the client-facing form of a single field constraint.
type Rule struct {
	Field   string `json:"field"`
	Min     int    `json:"min"`
	Message string `json:"message"`
}

type fieldSpec struct {
	index   int
	name    string
	min     int
	message string
}

var (
	validate = newValidator()
	specs    = buildSpecs()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func buildSpecs() []fieldSpec {
	t := reflect.TypeOf(SpouseInput{})
	out := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		spec := fieldSpec{index: i, name: jsonName(f), message: f.Tag.Get("msg")}
		for _, part := range strings.Split(f.Tag.Get("validate"), ",") {
			if v, ok := strings.CutPrefix(part, "min="); ok {
				n, err := strconv.Atoi(v)
				if err != nil {
					panic(fmt.Sprintf("schema: bad min rule on %s: %q", f.Name, part))
				}
				spec.min = n
			}
		}
		out = append(out, spec)
	}
	return out
}

// Rules returns the field constraints in declaration order.
func Rules() []Rule {
	out := make([]Rule, 0, len(specs))
	for _, s := range specs {
		out = append(out, Rule{Field: s.name, Min: s.min, Message: s.message})
	}
	return out
}

// Validate checks in against the rules. A failure is always a *ValidationError.
func Validate(in SpouseInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: messageFor(fe.Field()),
		})
	}
	return &ValidationError{Issues: issues}
}

// Parse decodes an arbitrary JSON body into a SpouseInput and validates it.
// An empty body is treated as an empty object. Fields other than the three
// declared ones, including any client-supplied id, are ignored.
func Parse(body []byte) (SpouseInput, error) {
	var in SpouseInput

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return in, &ValidationError{Issues: []Issue{{Rule: "json", Message: "Malformed JSON body"}}}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return in, &ValidationError{Issues: []Issue{{
			Rule:    "type",
			Message: "Expected object, received " + typeName(raw),
		}}}
	}

	typeIssues := make(map[string]Issue)
	dst := reflect.ValueOf(&in).Elem()
	for _, s := range specs {
		v, present := obj[s.name]
		if !present {
			typeIssues[s.name] = Issue{Field: s.name, Rule: "required", Message: "Required"}
			continue
		}
		str, ok := v.(string)
		if !ok {
			typeIssues[s.name] = Issue{Field: s.name, Rule: "type", Message: "Expected string, received " + typeName(v)}
			continue
		}
		dst.Field(s.index).SetString(str)
	}

	err := Validate(in)
	if len(typeIssues) == 0 {
		return in, err
	}

	ruleIssues := make(map[string]Issue)
	var verr *ValidationError
	if errors.As(err, &verr) {
		for _, is := range verr.Issues {
			ruleIssues[is.Field] = is
		}
	}
	merged := &ValidationError{}
	for _, s := range specs {
		if is, ok := typeIssues[s.name]; ok {
			merged.Issues = append(merged.Issues, is)
		} else if is, ok := ruleIssues[s.name]; ok {
			merged.Issues = append(merged.Issues, is)
		}
	}
	return in, merged
}

func messageFor(field string) string {
	for _, s := range specs {
		if s.name == field {
			return s.message
		}
	}
	return "Invalid value"
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "object"
	}
}
