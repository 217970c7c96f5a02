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

import "strings"

// Delimiters are the characters that are syntactically significant in
// header values (RFC 7230 delimiters). Their presence in a value forces
// double-quote wrapping.
const Delimiters = "\"(),/:;<=>?@[\\]{}"

// IsDelimiter reports whether c belongs to the delimiter set.
func IsDelimiter(c byte) bool {
	return strings.IndexByte(Delimiters, c) >= 0
}

// Quote wraps s in double quotes when it contains characters that are
// not safe inside a header value: control characters (including space),
// DEL, or any delimiter. Backslashes and double quotes inside s are
// additionally backslash-escaped. The empty string becomes `""`.
//
// When no quoting is required, s is returned unchanged and nothing is
// allocated. The escape buffer is only materialized when the first
// escapable character is found.
func Quote(s string) string {
	if s == "" {
		return `""`
	}

	quote := false
	var buf []byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			quote = true
			if buf == nil {
				buf = make([]byte, 0, len(s)*2)
				buf = append(buf, s[:i]...)
			}
			buf = append(buf, '\\', c)
			continue
		}
		if c <= 0x20 || c == 0x7f || IsDelimiter(c) {
			quote = true
		}
		if buf != nil {
			buf = append(buf, c)
		}
	}

	if !quote {
		return s
	}
	if buf == nil {
		return `"` + s + `"`
	}
	return `"` + string(buf) + `"`
}
