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
	"context"
	"net"
	"net/http"
)

// HeadersFromRequest extracts the raw forwarding headers from r.
// Header name matching is case-insensitive via net/http's canonical
// header keys.
func HeadersFromRequest(r *http.Request) Headers {
	return Headers{
		Forwarded:       Multi(r.Header.Values("Forwarded")...),
		XForwardedFor:   Multi(r.Header.Values("X-Forwarded-For")...),
		XForwardedHost:  Multi(r.Header.Values("X-Forwarded-Host")...),
		XForwardedProto: Multi(r.Header.Values("X-Forwarded-Proto")...),
	}
}

// RequestDefaults derives the hop-distance-0 connection facts from r:
// the remote address of the connection, the local address the server
// accepted it on (when the net/http server recorded one), the
// requested host and the connection scheme.
func RequestDefaults(r *http.Request) Defaults {
	d := Defaults{
		For:   r.RemoteAddr,
		Host:  r.Host,
		Proto: "http",
	}
	if r.TLS != nil {
		d.Proto = "https"
	}
	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		d.By = addr.String()
	}
	return d
}

type ctxKey int

const reportKey ctxKey = iota

// lazyReport memoizes the resolved report for one request. It is only
// ever touched by the logical flow owning the request, so a plain
// single-assignment field suffices and no lock is taken.
type lazyReport struct {
	resolve func() Report
	report  Report
	done    bool
}

func (l *lazyReport) get() Report {
	if !l.done {
		l.report = l.resolve()
		l.resolve = nil
		l.done = true
	}
	return l.report
}

// Handle wraps next so that FromContext can obtain the trusted
// forwarding report of each request. The report is computed lazily, at
// most once per request, on first use.
func Handle(trust Trust, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lazy := &lazyReport{resolve: func() Report {
			return FromHeaders(HeadersFromRequest(r), RequestDefaults(r), trust)
		}}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), reportKey, lazy)))
	})
}

// FromContext returns the forwarding report installed by Handle, or
// false when the request was not routed through it.
func FromContext(ctx context.Context) (Report, bool) {
	lazy, ok := ctx.Value(reportKey).(*lazyReport)
	if !ok {
		return nil, false
	}
	return lazy.get(), true
}
