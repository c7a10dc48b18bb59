// Package form validates configuration and command requests before a run.
package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
)

// Error lists every violated rule.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", gerr.ErrInvalidConfig, strings.Join(e.Violations, " "))
}

func (e *Error) Unwrap() error {
	return gerr.ErrInvalidConfig
}

// Analog of validation.ValidateStruct that keeps going after the first failing
// field and reports every violation.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	var violations []string
	for _, rule := range rules {
		err := validation.ValidateStruct(structPtr, rule)
		if err != nil {
			violations = append(violations, flatten("", err)...)
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

// flatten turns nested validation.Errors into "parent.child: message." lines.
func flatten(prefix string, err error) []string {
	var fe *Error
	if errors.As(err, &fe) {
		out := make([]string, 0, len(fe.Violations))
		for _, v := range fe.Violations {
			out = append(out, join(prefix, v))
		}
		return out
	}
	ve, ok := err.(validation.Errors)
	if !ok {
		if prefix == "" {
			return []string{formatErrMsg(err.Error())}
		}
		return []string{prefix + ": " + formatErrMsg(err.Error())}
	}
	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []string
	for _, k := range keys {
		out = append(out, flatten(join(prefix, k), ve[k])...)
	}
	return out
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}
