// Package schemas holds types exercising the edge cases of static shape building.
package schemas

import (
	"encoding/json"
	"time"

	"selector-generator/examples/drive"
	"selector-generator/shape"
)

type Tags []string

type Status string

type Base struct {
	ETag string `json:"etag"`
}

type meta struct {
	Kind string `json:"kind"`
}

type Resource struct {
	Base
	meta
	ID       string          `json:"id"`
	Status   Status          `json:"status"`
	Tags     Tags            `json:"tags"`
	Raw      json.RawMessage `json:"raw"`
	Blob     []byte          `json:"blob"`
	Created  *time.Time      `json:"created"`
	Attrs    map[string]any  `json:"attrs"`
	Matrix   [][]int         `json:"matrix"`
	Parent   *Base           `json:"parent"`
	Skipped  string          `json:"-"`
	Extra    Base            `json:"extra" selector:",leaf"`
	internal string
}

type Node struct {
	Name     string  `json:"name"`
	Children []*Node `json:"children"`
}

type Hook struct {
	Callback func() `json:"callback"`
}

type Number struct {
	Value complex128 `json:"value"`
}

type Page[T any] struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []T    `json:"items"`
}

type Self struct {
	Name string
}

func (Self) SelectorShape() *shape.Shape {
	return shape.Composite(shape.F("name", shape.Leaf()))
}

type UsesSelf struct {
	Self Self `json:"self"`
}

// Lookalike has a SelectorShape method that does not return a shape.
type Lookalike struct {
	Name string `json:"name"`
}

func (Lookalike) SelectorShape() string { return "name" }

type UsesLookalike struct {
	Lookalike Lookalike `json:"lookalike"`
}

type BadFlatten struct {
	Name string `selector:",flatten"`
}

type Shared struct {
	Owner drive.UserInfo `json:"owner"`
}

type Identified struct {
	ID   string `json:"id"`
	ETag string `json:"etag"`
}

type Shadowed struct {
	ID string `json:"id"`
	Identified
}

type Twins struct {
	Base
	Extra Base `json:"extra" selector:",flatten"`
}
