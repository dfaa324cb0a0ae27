package fields

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Placeholder is shown wherever a value is missing.
const Placeholder = "—"

// ResolveValue returns the one-line display string of a header-shaped field.
func ResolveValue(value jsonv.Value, shape Shape) string {
	switch shape {
	case ShapeBoolean:
		return YesNo(jsonv.Truthy(value))
	case ShapeReference:
		return memberOrPlaceholder(value, "name")
	case ShapeDisplayStringMap:
		return memberOrPlaceholder(value, "as_string")
	case ShapeReferenceList:
		names := ReferenceNames(value)
		if len(names) == 0 {
			return Placeholder
		}
		return strings.Join(names, ", ")
	default:
		return OrPlaceholder(value)
	}
}

// ReferenceNames returns the non-empty name of every object element of a list.
func ReferenceNames(value jsonv.Value) []string {
	arr, ok := value.(jsonv.Array)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(arr))
	for _, item := range arr {
		obj, ok := jsonv.AsObject(item)
		if !ok {
			continue
		}
		name, ok := obj.Lookup("name")
		if !ok {
			continue
		}
		if s := jsonv.Display(name); s != "" {
			names = append(names, s)
		}
	}
	return names
}

// OrPlaceholder displays value, or the placeholder when it is null.
func OrPlaceholder(value jsonv.Value) string {
	if jsonv.IsNull(value) {
		return Placeholder
	}
	return jsonv.Display(value)
}

// YesNo displays a flag.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Nested displays a value that may be a plain string or an object carrying a
// name (or value, or pre-rendered as_string) attribute.
func Nested(value jsonv.Value) string {
	obj, ok := jsonv.AsObject(value)
	if !ok {
		return OrPlaceholder(value)
	}
	for _, key := range []string{"name", "value", "as_string"} {
		if v, ok := obj.Lookup(key); ok {
			return jsonv.Display(v)
		}
	}
	return Placeholder
}

// MetaValue displays a secondary attribute as a badge value.
func MetaValue(value jsonv.Value) string {
	switch v := value.(type) {
	case jsonv.Bool:
		return YesNo(bool(v))
	case jsonv.Array:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if obj, ok := jsonv.AsObject(item); ok {
				if name, ok := obj.Lookup("name"); ok {
					parts = append(parts, jsonv.Display(name))
					continue
				}
			}
			parts = append(parts, jsonv.Display(item))
		}
		return strings.Join(parts, ", ")
	case *jsonv.Object:
		if name, ok := v.Lookup("name"); ok {
			return jsonv.Display(name)
		}
		if inner, ok := v.Lookup("value"); ok {
			return jsonv.Display(inner)
		}
		return jsonv.Display(v)
	default:
		return jsonv.Display(value)
	}
}

func memberOrPlaceholder(value jsonv.Value, key string) string {
	obj, ok := jsonv.AsObject(value)
	if !ok {
		return Placeholder
	}
	v, ok := obj.Lookup(key)
	if !ok {
		return Placeholder
	}
	return jsonv.Display(v)
}
