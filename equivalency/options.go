// Package equivalency configures structural comparisons and reports the
// ones that fail.
//
// Comparisons run on github.com/google/go-cmp; failures are reported through
// testify, so every assertion here works with any assert.TestingT.
package equivalency

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"optassert/constants"
	"slices"
	"strings"
)

type EnumMode int

const (
	EnumsByValue EnumMode = iota
	EnumsByName
)

func (m EnumMode) String() string {
	switch m {
	case EnumsByName:
		return constants.EnumModeName
	default:
		return constants.EnumModeValue
	}
}

func ParseEnumMode(s string) (EnumMode, error) {
	switch s {
	case constants.EnumModeValue:
		return EnumsByValue, nil
	case constants.EnumModeName:
		return EnumsByName, nil
	default:
		return EnumsByValue, fmt.Errorf("unknown enum comparison mode %q", s)
	}
}

// Options describes how two values are compared. Options is a value type:
// every builder method returns a modified copy and leaves the receiver alone.
type Options struct {
	excluded          []string
	enums             EnumMode
	strictOrdering    bool
	includeUnexported bool
	trace             bool
	extra             []cmp.Option
}

// Config derives the options of a single comparison from the defaults.
type Config func(Options) Options

func Identity(o Options) Options {
	return o
}

// New returns the built-in configuration, ignoring global defaults.
func New() Options {
	return Options{
		enums:          EnumsByValue,
		strictOrdering: true,
	}
}

// Excluding skips members by dotted path, e.g. "Address.Street". Path
// segments are exported field names and string map keys.
func (o Options) Excluding(paths ...string) Options {
	o.excluded = append(slices.Clone(o.excluded), paths...)
	return o
}

func (o Options) ComparingEnumsByName() Options {
	o.enums = EnumsByName
	return o
}

func (o Options) ComparingEnumsByValue() Options {
	o.enums = EnumsByValue
	return o
}

func (o Options) WithStrictOrdering() Options {
	o.strictOrdering = true
	return o
}

// WithoutStrictOrdering compares slices as multisets. Byte slices keep their order.
func (o Options) WithoutStrictOrdering() Options {
	o.strictOrdering = false
	return o
}

func (o Options) IncludingUnexportedFields() Options {
	o.includeUnexported = true
	return o
}

func (o Options) ExcludingUnexportedFields() Options {
	o.includeUnexported = false
	return o
}

func (o Options) WithTracing() Options {
	o.trace = true
	return o
}

func (o Options) WithoutTracing() Options {
	o.trace = false
	return o
}

// Using appends raw go-cmp options.
func (o Options) Using(opts ...cmp.Option) Options {
	o.extra = append(slices.Clone(o.extra), opts...)
	return o
}

func (o Options) EnumMode() EnumMode {
	return o.enums
}

func (o Options) ExcludedPaths() []string {
	return slices.Clone(o.excluded)
}

func (o Options) IsStrictOrdering() bool {
	return o.strictOrdering
}

func (o Options) IsTracing() bool {
	return o.trace
}

// String renders one "- " line per active setting.
func (o Options) String() string {
	var b strings.Builder
	b.WriteString("- Use declared types and members\n")
	fmt.Fprintf(&b, "- Compare enums by %s\n", o.enums)
	if o.includeUnexported {
		b.WriteString("- Include all fields, exported or not\n")
	} else {
		b.WriteString("- Include all exported fields\n")
	}
	for _, path := range o.excluded {
		fmt.Fprintf(&b, "- Exclude member %s\n", path)
	}
	b.WriteString("- Match member by name (or fail)\n")
	if o.strictOrdering {
		b.WriteString("- Be strict about the order of items in collections\n")
	} else {
		b.WriteString("- Ignore the order of items in collections\n")
		b.WriteString("- Be strict about the order of items in byte slices\n")
	}
	if len(o.extra) > 0 {
		fmt.Fprintf(&b, "- Apply %d custom comparison option(s)\n", len(o.extra))
	}
	if o.trace {
		b.WriteString("- Trace every compared member\n")
	}
	return b.String()
}
