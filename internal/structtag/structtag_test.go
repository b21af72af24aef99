package structtag

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		tag      reflect.StructTag
		nameKey  string
		expected Options
	}{
		{"empty", ``, "", Options{}},
		{"json name", `json:"mimeType"`, "", Options{Name: "mimeType"}},
		{"json omitempty", `json:"mimeType,omitempty"`, "json", Options{Name: "mimeType"}},
		{"json options only", `json:",omitempty"`, "json", Options{}},
		{"json skip", `json:"-"`, "json", Options{Skip: true}},
		{"selector skip", `json:"id" selector:"-"`, "json", Options{Skip: true}},
		{"selector name wins", `json:"a" selector:"b"`, "json", Options{Name: "b"}},
		{"selector overrides json skip", `json:"-" selector:"kind"`, "json", Options{Name: "kind"}},
		{"flatten", `selector:",flatten"`, "json", Options{Flatten: true}},
		{"flatten keeps json name", `json:"payload" selector:",flatten"`, "json", Options{Name: "payload", Flatten: true}},
		{"leaf", `json:"meta" selector:",leaf"`, "json", Options{Name: "meta", Leaf: true}},
		{"yaml inline", `yaml:",inline"`, "yaml", Options{Flatten: true}},
		{"custom key", `json:"a" api:"b"`, "api", Options{Name: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.tag, tt.nameKey))
		})
	}
}
