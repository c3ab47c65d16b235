package equivalency

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"optassert/utils"
	"reflect"
	"strings"
)

type tHelper interface {
	Helper()
}

// AssertEquality asserts that subject is structurally equivalent to expected
// under config applied to the current defaults. A nil config compares with
// the defaults unchanged. msgAndArgs is passed to testify untouched.
func AssertEquality[T any](t assert.TestingT, subject T, expected any, config Config, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if config == nil {
		config = Identity
	}
	options := config(Defaults())

	message, equal := compare(utils.TypeOf[T](), subject, expected, options)
	if equal {
		return true
	}
	return assert.Fail(t, message, msgAndArgs...)
}

func compare(declared reflect.Type, subject, expected any, options Options) (message string, equal bool) {
	defer func() {
		if r := recover(); r != nil {
			message = fmt.Sprintf("Cannot compare %s with %s: %v\n\nWith configuration:\n%s",
				utils.TypeName(declared), printer.Sprintf("%v", expected), r, options)
			equal = false
		}
	}()

	opts := options.cmpOptions()
	reporter := &stepReporter{trace: options.trace}
	if cmp.Equal(subject, expected, append(opts, cmp.Reporter(reporter))...) {
		return "", true
	}

	var b strings.Builder
	b.WriteString(headline(declared, subject, expected, options))
	b.WriteString("\n")

	if path, ok := reporter.firstDifference(); ok && path != "root" {
		fmt.Fprintf(&b, "First difference at %s.\n", path)
	}
	if !isScalar(subject) || !isScalar(expected) {
		fmt.Fprintf(&b, "Differences (-expected +actual):\n%s", cmp.Diff(expected, subject, opts...))
	}

	fmt.Fprintf(&b, "\nWith configuration:\n%s", options)

	if options.trace {
		fmt.Fprintf(&b, "\nWith trace:\n%s\n", strings.Join(reporter.steps, "\n"))
	}
	return b.String(), false
}

func headline(declared reflect.Type, subject, expected any, options Options) string {
	if s, ok := subject.(string); ok {
		if e, ok := expected.(string); ok {
			return describeStringMismatch(s, e)
		}
	}

	if isEnum(expected) {
		return fmt.Sprintf("Expected enum to equal %s by %s, but found %s.",
			describeEnum(expected), options.enums, describeEnum(subject))
	}

	return fmt.Sprintf("Expected %s to be equivalent to %s, but found %s.",
		utils.TypeName(declared), printer.Sprintf("%+v", expected), printer.Sprintf("%+v", subject))
}

// describeStringMismatch points at the first differing rune of two strings.
func describeStringMismatch(subject, expected string) string {
	s, e := []rune(subject), []rune(expected)

	i := 0
	for i < len(s) && i < len(e) && s[i] == e[i] {
		i++
	}

	switch {
	case i == len(s) && i == len(e):
		return fmt.Sprintf("Expected string to be %q, but %q differs in its byte encoding.", expected, subject)
	case i == len(s):
		return fmt.Sprintf("Expected string to be %q, but %q is too short (index %d).", expected, subject, i)
	case i == len(e):
		return fmt.Sprintf("Expected string to be %q, but %q is too long (index %d).", expected, subject, i)
	}

	end := i + 3
	if end > len(s) {
		end = len(s)
	}
	return fmt.Sprintf("Expected string to be %q, but %q differs near %q (index %d).",
		expected, subject, string(s[i:end]), i)
}

func isScalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Array, reflect.Slice, reflect.Map, reflect.Struct, reflect.Pointer, reflect.Interface:
		return false
	}
	return true
}
