/*
Copyright 2026 The HTTP Header Value Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package hthv

// Item is one element of a parsed, comma-separated header value list.
// Parameters of an item are themselves items, which permits nested
// parameter structures, though headers such as Forwarded only ever use
// one flat level.
//
// The ordered parameter list is the source of truth. The name-keyed
// index is derived from it by a left-to-right fold (last write wins on
// duplicate names) and is never maintained independently.
type Item struct {
	// Marker is an optional single-character tag distinguishing item
	// sub-kinds. It is opaque to this package and empty when absent.
	Marker string

	// Name of the item. Empty for unnamed, bare items.
	Name string

	// Value is the item's primary value, e.g. an address or the
	// unescaped content of a quoted string.
	Value string

	// Extension is set on items constructed synthetically rather than
	// parsed from header text.
	Extension bool

	params []*Item
	index  map[string]*Item
}

// ItemSpec is a partial description of an item to construct. Value is
// required, everything else is optional.
//
// When Params is given without Index, the index is derived from the
// list. When only Index is given, the list is rebuilt from it in
// unspecified order. When both are omitted the item has no parameters.
type ItemSpec struct {
	Marker    string
	Name      string
	Value     string
	Extension bool
	Params    []*Item
	Index     map[string]*Item
}

// New constructs an item from spec, deriving whichever of the
// parameter list and index was omitted.
func New(spec ItemSpec) *Item {
	it := &Item{
		Marker:    spec.Marker,
		Name:      spec.Name,
		Value:     spec.Value,
		Extension: spec.Extension,
	}

	switch {
	case spec.Params != nil:
		it.params = append([]*Item(nil), spec.Params...)
	case spec.Index != nil:
		it.params = make([]*Item, 0, len(spec.Index))
		for _, p := range spec.Index {
			it.params = append(it.params, p)
		}
	}
	it.index = indexParams(it.params)

	return it
}

// indexParams folds the ordered parameter list into a name-keyed index.
// Later occurrences of a name shadow earlier ones, mirroring sequential
// construction of the list.
func indexParams(params []*Item) map[string]*Item {
	index := make(map[string]*Item, len(params))
	for _, p := range params {
		if p.Name != "" {
			index[p.Name] = p
		}
	}
	return index
}

// Params returns the ordered parameter list, preserving source order
// and duplicates. Callers must not modify the returned slice.
func (it *Item) Params() []*Item {
	return it.params
}

// Param returns the named parameter, or nil when absent. When the list
// contains duplicates of name, the last one wins.
func (it *Item) Param(name string) *Item {
	return it.index[name]
}

// ParamValue returns the value of the named parameter and whether the
// parameter is present.
func (it *Item) ParamValue(name string) (string, bool) {
	p := it.index[name]
	if p == nil {
		return "", false
	}
	return p.Value, true
}
