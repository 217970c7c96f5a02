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

// Package hthv models structured HTTP header values: comma-separated
// items carrying an optional name/value pair and an ordered list of
// semicolon-separated named parameters, as used by headers such as
// Forwarded (RFC 7239).
//
// The package provides the item model, a lenient tokenizer that turns
// raw header text into an item list, a conditional quoting primitive
// for emitting header-safe text, and trivial comma-list helpers for
// legacy headers like X-Forwarded-For.
//
// Everything in this package is a pure function over immutable inputs
// and is safe for concurrent use.
package hthv
