// Package fields classifies the attributes of a schema-less entity payload
// and provides the label, ordering and display helpers shared by renderers.
package fields

import (
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Shape describes how a single attribute should be displayed.
type Shape string

const (
	ShapeScalar           Shape = "scalar"
	ShapeBoolean          Shape = "boolean"
	ShapeReference        Shape = "reference"
	ShapeDisplayStringMap Shape = "display_string_map"
	ShapeReferenceList    Shape = "reference_list"
	ShapeNamedSectionList Shape = "named_section_list"
	ShapeDescOnlyList     Shape = "desc_only_list"
	ShapeKeyValueMap      Shape = "key_value_map"
	ShapeRichText         Shape = "rich_text"
	ShapeDetailObject     Shape = "detail_object"
	ShapeUnknownArray     Shape = "unknown_array"
	// ShapeUnknownObject is part of the closed set but Classify never returns
	// it: every object ends up as detail_object at worst.
	ShapeUnknownObject Shape = "unknown_object"
)

// Classification thresholds.
const (
	// ReferenceMaxKeys is the largest object still treated as a pointer to
	// another named entity.
	ReferenceMaxKeys = 5
	// ReferenceListMaxKeys caps the keys of the first element of a reference list.
	ReferenceListMaxKeys = 4
	// KeyValuePrimitiveRatio is the share of string/number values that makes
	// an object a stat grid.
	KeyValuePrimitiveRatio = 0.7
	// RichTextMaxLength is the longest string (in characters) still shown inline.
	RichTextMaxLength = 100
)

var richTextMarkers = []string{"\n", "**", "##", "|"}

// IsHeader reports whether fields of this shape belong in the info-box grid.
func (s Shape) IsHeader() bool {
	switch s {
	case ShapeScalar, ShapeBoolean, ShapeReference, ShapeDisplayStringMap, ShapeReferenceList:
		return true
	default:
		return false
	}
}

// Field is an attribute together with its classification.
type Field struct {
	Key   string
	Value jsonv.Value
	Shape Shape
}

// Classify assigns a shape to value. The key does not take part in the
// decision. Classify is total: every value yields exactly one shape.
func Classify(_ string, value jsonv.Value) Shape {
	switch v := value.(type) {
	case jsonv.Bool:
		return ShapeBoolean
	case jsonv.String:
		if IsRichText(string(v)) {
			return ShapeRichText
		}
		return ShapeScalar
	case jsonv.Number:
		return ShapeScalar
	case jsonv.Array:
		if len(v) == 0 {
			return ShapeUnknownArray
		}
		return peekArray(v)
	case *jsonv.Object:
		if v == nil {
			return ShapeScalar
		}
		return classifyObject(v)
	default:
		return ShapeScalar
	}
}

// IsRichText reports whether s is long-form text that needs markdown rendering.
func IsRichText(s string) bool {
	if utf8.RuneCountInString(s) > RichTextMaxLength {
		return true
	}
	for _, marker := range richTextMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// peekArray decides the shape of a list from its first element only.
func peekArray(arr jsonv.Array) Shape {
	first, ok := jsonv.AsObject(arr[0])
	if !ok {
		return ShapeUnknownArray
	}

	hasName := first.Has("name")
	hasDesc := first.Has("desc")

	switch {
	case hasName && hasDesc:
		return ShapeNamedSectionList
	case hasDesc:
		return ShapeDescOnlyList
	case hasName && first.Len() <= ReferenceListMaxKeys:
		return ShapeReferenceList
	default:
		return ShapeUnknownArray
	}
}

func classifyObject(obj *jsonv.Object) Shape {
	if isDisplayStringMap(obj) {
		return ShapeDisplayStringMap
	}
	if isReference(obj) {
		return ShapeReference
	}
	if isKeyValueMap(obj) {
		return ShapeKeyValueMap
	}
	return ShapeDetailObject
}

func isDisplayStringMap(obj *jsonv.Object) bool {
	v, ok := obj.Get("as_string")
	if !ok {
		return false
	}
	_, isString := v.(jsonv.String)
	return isString
}

func isReference(obj *jsonv.Object) bool {
	return obj.Has("name") && obj.Has("key") && obj.Len() <= ReferenceMaxKeys
}

func isKeyValueMap(obj *jsonv.Object) bool {
	if obj.Len() == 0 {
		return false
	}
	primitive := 0
	for _, m := range obj.Members() {
		switch m.Value.(type) {
		case jsonv.String, jsonv.Number:
			primitive++
		}
	}
	return float64(primitive)/float64(obj.Len()) >= KeyValuePrimitiveRatio
}
