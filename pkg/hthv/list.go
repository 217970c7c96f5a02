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

// SplitList splits a comma-separated header value into its elements,
// trimming surrounding whitespace and dropping empty elements. No
// quoting rules apply; this is the trivial parser used for legacy
// headers such as X-Forwarded-For.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var elems []string
	for _, elem := range strings.Split(s, ",") {
		if elem = strings.TrimSpace(elem); elem != "" {
			elems = append(elems, elem)
		}
	}
	return elems
}

// FirstListed returns the first element of the first comma-separated
// list in values, or "" when all of them are blank.
func FirstListed(values ...string) string {
	for _, v := range values {
		if elems := SplitList(v); len(elems) > 0 {
			return elems[0]
		}
	}
	return ""
}
