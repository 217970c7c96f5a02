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
	"github.com/proc7ts/http-header-value/pkg/hthv"
)

// TrustMask is the two-bit trust decision for one evaluated hop.
type TrustMask uint8

const (
	// TrustCurrent means the hop's reported fields may be used.
	TrustCurrent TrustMask = 1 << iota

	// TrustPrevious means that, provided this hop is itself trusted,
	// the next more-distant hop is trusted by inheritance even when
	// the policy alone would not trust it.
	TrustPrevious
)

// TrustFull grants both trust bits.
const TrustFull = TrustCurrent | TrustPrevious

// Checker decides how far a single forwarding record is trusted. The
// hop distance is 1-based: distance 1 is the record added by the proxy
// directly connected to this server. Distance 0 denotes the synthetic
// record built from locally observed connection facts; it is trusted by
// construction and a Checker is never consulted for it.
//
// A Checker must be pure per call and must not block.
type Checker func(item *hthv.Item, hop int) TrustMask

// Trust configures forwarding header processing.
//
// The zero value trusts no proxy hop and leaves the legacy
// X-Forwarded-* fallback enabled.
type Trust struct {
	// Check is the per-hop trust policy. nil trusts nothing.
	Check Checker

	// DisableXForwarded switches off the X-Forwarded-* fallback used
	// when no Forwarded header is present.
	DisableXForwarded bool
}

// TrustNone is a Checker that trusts no record.
func TrustNone(*hthv.Item, int) TrustMask {
	return 0
}

// TrustHops returns a Checker fully trusting every record within n
// hops of the server.
func TrustHops(n int) Checker {
	return func(_ *hthv.Item, hop int) TrustMask {
		if hop <= n {
			return TrustFull
		}
		return 0
	}
}

// TrustAddrs returns a Checker fully trusting a record whose own value
// or by parameter exactly matches one of the given node identifiers.
// Matching is literal: no IP range logic is applied.
func TrustAddrs(addrs ...string) Checker {
	nodes := make(map[string]bool, len(addrs))
	for _, addr := range addrs {
		nodes[addr] = true
	}
	return func(item *hthv.Item, _ int) TrustMask {
		if nodes[item.Value] {
			return TrustFull
		}
		if by, ok := item.ParamValue("by"); ok && nodes[by] {
			return TrustFull
		}
		return 0
	}
}

// TrustAny combines checkers by ORing their masks.
func TrustAny(checkers ...Checker) Checker {
	return func(item *hthv.Item, hop int) TrustMask {
		var mask TrustMask
		for _, check := range checkers {
			mask |= check(item, hop)
		}
		return mask
	}
}
