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

// Parse tokenizes a structured header value into an ordered item list.
// Items are separated by commas, an item's parameters by semicolons,
// and each pair is either a bare value or name=value, where the value
// may be a token or a backslash-escaped quoted string.
//
// The tokenizer is lenient and total: malformed fragments degrade to
// raw-text values instead of failing, and empty fragments are dropped.
// Items are returned in wire order, with the first item the one closest
// to the original sender.
func Parse(s string) []*Item {
	var items []*Item
	for _, elem := range splitQuoted(s, ',') {
		if strings.TrimSpace(elem) == "" {
			continue
		}
		items = append(items, parseElement(elem))
	}
	return items
}

func parseElement(elem string) *Item {
	pairs := splitQuoted(elem, ';')
	name, value := parsePair(pairs[0])

	var params []*Item
	for _, pair := range pairs[1:] {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		n, v := parsePair(pair)
		params = append(params, New(ItemSpec{Name: n, Value: v}))
	}

	return New(ItemSpec{Name: name, Value: value, Params: params})
}

// parsePair splits one name=value pair. A pair without "=" or starting
// with a double quote is a bare, unnamed value.
func parsePair(pair string) (name, value string) {
	pair = strings.TrimSpace(pair)
	if strings.HasPrefix(pair, `"`) {
		return "", unquote(pair)
	}
	i := strings.IndexByte(pair, '=')
	if i < 0 {
		return "", pair
	}
	return strings.TrimSpace(pair[:i]), unquote(strings.TrimSpace(pair[i+1:]))
}

// unquote strips a surrounding double-quote pair and resolves
// backslash escapes. Anything that is not a quoted string is returned
// verbatim; an unterminated quoted string is taken to the end of input.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' {
		return s
	}
	body := s[1:]
	if body[len(body)-1] == '"' {
		body = body[:len(body)-1]
	}
	if !strings.Contains(body, `\`) {
		return body
	}

	buf := make([]byte, 0, len(body))
	escaped := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case escaped:
			buf = append(buf, c)
			escaped = false
		case c == '\\':
			escaped = true
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// splitQuoted splits s on sep, ignoring separators inside quoted
// strings and skipping backslash-escaped characters within them.
func splitQuoted(s string, sep byte) []string {
	var parts []string
	start := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case quoted && c == '\\':
			i++
		case c == '"':
			quoted = !quoted
		case !quoted && c == sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
