package equivalency

import (
	"fmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"go/token"
	"math"
	"reflect"
	"strings"
)

const membersTransformer = "Members"

var printer = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func (o Options) cmpOptions() []cmp.Option {
	return o.cmpOptionsAt("")
}

// cmpOptionsAt builds the options for values found at member path prefix
// of the outermost comparison.
func (o Options) cmpOptionsAt(prefix string) []cmp.Option {
	opts := []cmp.Option{
		membersByName(),
		enumComparison(o.enums),
	}

	if o.includeUnexported {
		opts = append(opts, cmp.Exporter(func(reflect.Type) bool { return true }))
	} else {
		opts = append(opts, ignoreUnexported())
	}

	if len(o.excluded) > 0 {
		opts = append(opts, excluding(o.excluded, prefix))
	}

	if !o.strictOrdering {
		opts = append(opts, o.unordered(prefix))
	}

	return append(opts, o.extra...)
}

func ignoreUnexported() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		sf, ok := p.Last().(cmp.StructField)
		return ok && !token.IsExported(sf.Name())
	}, cmp.Ignore())
}

func excluding(paths []string, prefix string) cmp.Option {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return cmp.FilterPath(func(p cmp.Path) bool {
		_, found := set[joinPath(prefix, memberPath(p))]
		return found
	}, cmp.Ignore())
}

// unordered matches the items of two slices as a multiset. Each expected
// item claims the first unclaimed subject item that is equivalent to it
// under the same options, so exclusions and member matching still apply.
func (o Options) unordered(prefix string) cmp.Option {
	// go-cmp runs a filter right before applying its option, so at holds
	// the path of the slices the comparer receives.
	var at string
	return cmp.FilterPath(func(p cmp.Path) bool {
		t := p.Last().Type()
		if t == nil || t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return false
		}
		vx, vy := p.Last().Values()
		if !vx.IsValid() || !vy.IsValid() || (vx.Len() < 2 && vy.Len() < 2) {
			return false
		}
		at = joinPath(prefix, memberPath(p))
		return true
	}, cmp.Comparer(func(x, y any) bool {
		return matchUnordered(x, y, o.cmpOptionsAt(at))
	}))
}

func matchUnordered(x, y any, opts []cmp.Option) bool {
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Len() != vy.Len() {
		return false
	}

	claimed := make([]bool, vx.Len())
	for i := 0; i < vy.Len(); i++ {
		found := false
		for j := 0; j < vx.Len(); j++ {
			if claimed[j] || !cmp.Equal(vx.Index(j).Interface(), vy.Index(i).Interface(), opts...) {
				continue
			}
			claimed[j] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// membersByName lets values of two different struct types be compared
// member by member. Slices, arrays, pointers and maps of such structs are
// unwrapped one level at a time so the rule reaches their elements.
func membersByName() cmp.Option {
	return cmp.FilterValues(func(x, y any) bool {
		if x == nil || y == nil {
			return false
		}
		return matchableByMembers(reflect.TypeOf(x), reflect.TypeOf(y))
	}, cmp.Transformer(membersTransformer, members))
}

func matchableByMembers(tx, ty reflect.Type) bool {
	if tx == ty || tx.Kind() != ty.Kind() {
		return false
	}
	switch tx.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array, reflect.Pointer:
		return tx.Elem() == ty.Elem() || matchableByMembers(tx.Elem(), ty.Elem())
	case reflect.Map:
		return tx.Key() == ty.Key() && (tx.Elem() == ty.Elem() || matchableByMembers(tx.Elem(), ty.Elem()))
	}
	return false
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// members projects v onto untyped containers: structs become a map of their
// exported members, collections hold their items as any and pointers are
// dereferenced and projected in place.
func members(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
		out := make(map[string]any, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = rv.Field(i).Interface()
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return []any(nil)
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return members(rv.Elem().Interface())
	case reflect.Map:
		out := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
		if rv.IsNil() {
			return reflect.Zero(out.Type()).Interface()
		}
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	}
	return v
}

func enumComparison(mode EnumMode) cmp.Option {
	return cmp.FilterValues(func(x, y any) bool {
		return isEnum(x) || isEnum(y)
	}, cmp.Transformer("Enum", func(v any) any {
		if mode == EnumsByName {
			return enumName(v)
		}
		return enumValue(v)
	}))
}

// isEnum reports whether v is an integer-kinded value with a String method.
func isEnum(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(fmt.Stringer); !ok {
		return false
	}
	return isInteger(reflect.TypeOf(v).Kind())
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func enumName(v any) any {
	if isEnum(v) {
		return v.(fmt.Stringer).String()
	}
	return v
}

func enumValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u)
		}
		return rv.Uint()
	}
	return v
}

// describeEnum renders an enum as Type.Name(value).
func describeEnum(v any) string {
	if !isEnum(v) {
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%s.%s(%v)", reflect.TypeOf(v).Name(), v.(fmt.Stringer).String(), enumValue(v))
}

// memberPath is the dotted member path of p: field names and string map
// keys, with indices and indirections left out.
func memberPath(p cmp.Path) string {
	var parts []string
	for _, step := range p {
		switch s := step.(type) {
		case cmp.StructField:
			parts = append(parts, s.Name())
		case cmp.MapIndex:
			if s.Key().Kind() == reflect.String {
				parts = append(parts, s.Key().String())
			}
		}
	}
	return strings.Join(parts, ".")
}

func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	}
	return prefix + "." + path
}

// describePath renders p for humans, keeping indices.
func describePath(p cmp.Path) string {
	var b strings.Builder
	var prev cmp.PathStep
	for _, step := range p {
		switch s := step.(type) {
		case cmp.StructField:
			b.WriteString("." + s.Name())
		case cmp.SliceIndex:
			if k := s.Key(); k >= 0 {
				fmt.Fprintf(&b, "[%d]", k)
			} else {
				ix, iy := s.SplitKeys()
				fmt.Fprintf(&b, "[%d->%d]", ix, iy)
			}
		case cmp.MapIndex:
			if t, ok := prev.(cmp.Transform); ok && t.Name() == membersTransformer && s.Key().Kind() == reflect.String {
				fmt.Fprintf(&b, ".%v", s.Key())
			} else {
				fmt.Fprintf(&b, "[%#v]", s.Key())
			}
		case cmp.TypeAssertion:
			continue
		}
		prev = step
	}
	return strings.TrimPrefix(b.String(), ".")
}
