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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBareItem(t *testing.T) {
	it := New(ItemSpec{Value: "203.0.113.5"})

	assert.Equal(t, "203.0.113.5", it.Value)
	assert.Empty(t, it.Name)
	assert.Empty(t, it.Marker)
	assert.False(t, it.Extension)
	assert.Empty(t, it.Params())
	assert.Nil(t, it.Param("host"))

	_, ok := it.ParamValue("host")
	assert.False(t, ok)
}

func TestNewDerivesIndexFromList(t *testing.T) {
	it := New(ItemSpec{
		Name:  "for",
		Value: "203.0.113.5",
		Params: []*Item{
			New(ItemSpec{Name: "host", Value: "example.com"}),
			New(ItemSpec{Name: "proto", Value: "http"}),
			New(ItemSpec{Name: "proto", Value: "https"}),
		},
	})

	require.Len(t, it.Params(), 3)
	// Source order and duplicates survive in the list.
	assert.Equal(t, "http", it.Params()[1].Value)
	assert.Equal(t, "https", it.Params()[2].Value)

	// The index folds left to right, so the last duplicate wins.
	proto, ok := it.ParamValue("proto")
	require.True(t, ok)
	assert.Equal(t, "https", proto)

	host := it.Param("host")
	require.NotNil(t, host)
	assert.Equal(t, "example.com", host.Value)
}

func TestNewDerivesListFromIndex(t *testing.T) {
	host := New(ItemSpec{Name: "host", Value: "example.com"})
	proto := New(ItemSpec{Name: "proto", Value: "https"})

	it := New(ItemSpec{
		Value: "203.0.113.5",
		Index: map[string]*Item{"host": host, "proto": proto},
	})

	assert.Len(t, it.Params(), 2)
	assert.Same(t, host, it.Param("host"))
	assert.Same(t, proto, it.Param("proto"))
}

func TestNewCopiesParamList(t *testing.T) {
	params := []*Item{New(ItemSpec{Name: "host", Value: "example.com"})}
	it := New(ItemSpec{Value: "a", Params: params})

	params[0] = New(ItemSpec{Name: "host", Value: "evil.example"})

	host, ok := it.ParamValue("host")
	require.True(t, ok)
	assert.Equal(t, "example.com", host)
}

func TestUnnamedParamsNotIndexed(t *testing.T) {
	it := New(ItemSpec{
		Value:  "a",
		Params: []*Item{New(ItemSpec{Value: "bare"})},
	})

	assert.Len(t, it.Params(), 1)
	assert.Nil(t, it.Param(""))
}
