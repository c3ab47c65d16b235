package utils

import "reflect"

func TypeOf[T any]() reflect.Type {
	var tp *T
	return reflect.TypeOf(tp).Elem()
}

// TypeName is the short name used for a declared type in failure messages.
// Interfaces and anonymous composite types fall back to their kind.
func TypeName(tp reflect.Type) string {
	if tp == nil || tp.Kind() == reflect.Interface {
		return "value"
	}
	if tp.Name() != "" {
		return tp.Name()
	}
	switch tp.Kind() {
	case reflect.Pointer:
		return "pointer to " + TypeName(tp.Elem())
	case reflect.Slice, reflect.Array:
		return "collection"
	default:
		return tp.Kind().String()
	}
}
