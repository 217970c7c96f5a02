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

package forwarded

import (
	"strings"

	"github.com/proc7ts/http-header-value/pkg/hthv"
)

// Value is a raw header value: either absent, a single string, or an
// ordered sequence of strings as delivered on repeated header lines.
type Value struct {
	values []string
	multi  bool
}

// Single wraps one raw header value.
func Single(s string) Value {
	return Value{values: []string{s}}
}

// Multi wraps an ordered sequence of raw header values.
func Multi(values ...string) Value {
	return Value{values: append([]string(nil), values...), multi: true}
}

// Values returns the raw values in order. A single value yields a
// one-element sequence, an absent value yields none.
func (v Value) Values() []string {
	return v.values
}

// IsMulti reports whether the value was built from a sequence of raw
// header values rather than a single string.
func (v Value) IsMulti() bool {
	return v.multi
}

// Empty reports whether the value is absent or all-blank.
func (v Value) Empty() bool {
	for _, s := range v.values {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// Headers carries the raw forwarding headers of one request.
type Headers struct {
	Forwarded       Value
	XForwardedFor   Value
	XForwardedHost  Value
	XForwardedProto Value
}

// FromHeaders selects the forwarding record source and resolves the
// trusted report.
//
// A non-blank Forwarded header wins: each of its raw values is parsed
// independently and the resulting items are concatenated in order.
// Otherwise, unless trust disables the fallback, a synthetic chain is
// built from X-Forwarded-For, with the first X-Forwarded-Host and
// X-Forwarded-Proto values attached as parameters to every synthetic
// item. With no usable headers at all the report equals defaults.
func FromHeaders(h Headers, defaults Defaults, trust Trust) Report {
	if !h.Forwarded.Empty() {
		var items []*hthv.Item
		for _, v := range h.Forwarded.Values() {
			items = append(items, hthv.Parse(v)...)
		}
		return Resolve(items, defaults, trust.Check)
	}

	if trust.DisableXForwarded {
		return Resolve(nil, defaults, trust.Check)
	}

	return Resolve(xForwardedItems(h), defaults, trust.Check)
}

// xForwardedItems synthesizes a forwarding record chain from the
// legacy X-Forwarded-* headers. Each X-Forwarded-For address becomes
// one "for" record; host and proto parameters are attached identically
// to all of them.
func xForwardedItems(h Headers) []*hthv.Item {
	var addrs []string
	for _, v := range h.XForwardedFor.Values() {
		addrs = append(addrs, hthv.SplitList(v)...)
	}
	if len(addrs) == 0 {
		return nil
	}

	var params []*hthv.Item
	if host := hthv.FirstListed(h.XForwardedHost.Values()...); host != "" {
		params = append(params, hthv.New(hthv.ItemSpec{Name: "host", Value: host, Extension: true}))
	}
	if proto := hthv.FirstListed(h.XForwardedProto.Values()...); proto != "" {
		params = append(params, hthv.New(hthv.ItemSpec{Name: "proto", Value: proto, Extension: true}))
	}

	items := make([]*hthv.Item, 0, len(addrs))
	for _, addr := range addrs {
		items = append(items, hthv.New(hthv.ItemSpec{
			Name:      "for",
			Value:     addr,
			Extension: true,
			Params:    params,
		}))
	}
	return items
}
