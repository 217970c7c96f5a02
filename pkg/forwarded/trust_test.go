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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustHops(t *testing.T) {
	check := TrustHops(2)
	item := forItem("203.0.113.5")

	assert.Equal(t, TrustFull, check(item, 1))
	assert.Equal(t, TrustFull, check(item, 2))
	assert.Equal(t, TrustMask(0), check(item, 3))
}

func TestTrustAddrs(t *testing.T) {
	check := TrustAddrs("203.0.113.5", "_gateway")

	assert.Equal(t, TrustFull, check(forItem("203.0.113.5"), 1))
	assert.Equal(t, TrustFull, check(forItem("_gateway"), 1))
	assert.Equal(t, TrustMask(0), check(forItem("198.51.100.9"), 1))

	// The by parameter identifies the reporting proxy as well.
	byProxy := forItem("198.51.100.9", param("by", "_gateway"))
	assert.Equal(t, TrustFull, check(byProxy, 1))
}

func TestTrustNone(t *testing.T) {
	assert.Equal(t, TrustMask(0), TrustNone(forItem("203.0.113.5"), 1))
}

func TestTrustAny(t *testing.T) {
	check := TrustAny(TrustHops(1), TrustAddrs("203.0.113.5"))

	assert.Equal(t, TrustFull, check(forItem("198.51.100.9"), 1))
	assert.Equal(t, TrustFull, check(forItem("203.0.113.5"), 5))
	assert.Equal(t, TrustMask(0), check(forItem("198.51.100.9"), 5))
}
