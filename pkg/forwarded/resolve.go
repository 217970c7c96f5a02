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
	"k8s.io/klog/v2"
)

// Defaults are the locally observed facts about the actual network
// connection. They act as the hop-distance-0 record of the trust walk:
// unconditionally trusted, and the fallback for every field a trusted
// record does not supply.
type Defaults struct {
	// By is the local address the connection was accepted on.
	By string
	// For is the remote address of the connection.
	For string
	// Host is the effective requested host.
	Host string
	// Proto is the connection scheme, e.g. "http" or "https".
	Proto string
}

// Report is the flattened, trust-resolved forwarding record. The
// "by", "for", "host" and "proto" keys are always present; any other
// parameters of the trusted record are carried through as extension
// keys.
type Report map[string]string

// forwardFields are the report keys always filled from the trust walk.
var forwardFields = [...]string{"by", "for", "host", "proto"}

// Resolve walks the forwarding record chain and returns the report the
// server may rely on. It never fails: an empty or fully untrusted
// chain yields a report equal to defaults.
//
// items are ordered from the most distant hop (index 0, nearest the
// original client) to the hop nearest this server (last index). The
// walk runs in the opposite direction, because trust can only be
// chained outward from the connection this server actually observes.
// Per hop, the policy mask is extended with the previous hop's
// TrustPrevious bit shifted into the TrustCurrent position, so that a
// trusted hop can vouch for the one directly behind it. The walk stops
// at the first hop left without TrustCurrent.
func Resolve(items []*hthv.Item, defaults Defaults, check Checker) Report {
	fields := map[string]string{
		"by":    defaults.By,
		"for":   defaults.For,
		"host":  defaults.Host,
		"proto": defaults.Proto,
	}

	// The synthetic defaults record, hop distance 0, carries both
	// trust bits by construction. It seeds field accumulation but is
	// never flattened itself.
	lastMask := TrustFull
	var trusted *hthv.Item

	hop := 0
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		hop++

		var mask TrustMask
		if check != nil {
			mask = check(item, hop)
		}
		mask |= (lastMask & TrustPrevious) >> 1

		if mask&TrustCurrent == 0 {
			klog.V(4).Infof("Forwarding record at hop %d untrusted, stopping walk", hop)
			break
		}

		trusted = item
		lastMask = mask
		for _, name := range forwardFields {
			if v, ok := itemField(item, name); ok && v != "" {
				fields[name] = v
			}
		}
	}

	report := make(Report, len(fields))
	if trusted != nil {
		for _, p := range trusted.Params() {
			if p.Name != "" {
				report[p.Name] = p.Value
			}
		}
		if trusted.Name != "" {
			report[trusted.Name] = trusted.Value
		}
	}
	for _, name := range forwardFields {
		report[name] = fields[name]
	}

	return report
}

// itemField extracts the named forwarding field from a record: the
// item's own value when the item bears that name, or else the value of
// the equally named parameter.
func itemField(item *hthv.Item, name string) (string, bool) {
	if item.Name == name {
		return item.Value, true
	}
	return item.ParamValue(name)
}
