// Package structtag reads the struct tags that control selector wire names.
//
// Two tags are consulted:
//   - the selector tag: `selector:"name,flatten"`, `selector:",leaf"`, `selector:"-"`
//   - the serialization tag (json by default): `json:"name,omitempty"`, `json:"-"`
//
// The selector tag wins when both name a field.
package structtag

import (
	"reflect"
	"strings"
)

// Key is the tag key for selector-specific options.
const Key = "selector"

// DefaultNameKey is the serialization tag consulted for wire names.
const DefaultNameKey = "json"

// Options is the parsed tag information of a single struct field.
type Options struct {
	Skip    bool   // field is not selectable
	Name    string // explicit wire name, empty when none was given
	Flatten bool   // splice the field's struct into the parent
	Leaf    bool   // treat the field as opaque
}

// Parse reads the selector tag and the nameKey tag of a field.
func Parse(tag reflect.StructTag, nameKey string) Options {
	if nameKey == "" {
		nameKey = DefaultNameKey
	}

	var opts Options

	sel, hasSel := tag.Lookup(Key)
	if sel == "-" {
		return Options{Skip: true}
	}

	if hasSel {
		name, rest := split(sel)
		opts.Name = name

		for _, o := range rest {
			switch o {
			case "flatten", "inline":
				opts.Flatten = true
			case "leaf", "opaque":
				opts.Leaf = true
			}
		}
	}

	ser := tag.Get(nameKey)
	if ser == "-" && opts.Name == "" {
		return Options{Skip: true}
	}

	if opts.Name == "" {
		name, rest := split(ser)
		opts.Name = name

		// yaml-style inline embedding
		for _, o := range rest {
			if o == "inline" {
				opts.Flatten = true
			}
		}
	}

	return opts
}

func split(tag string) (string, []string) {
	if tag == "" {
		return "", nil
	}

	parts := strings.Split(tag, ",")

	return parts[0], parts[1:]
}
