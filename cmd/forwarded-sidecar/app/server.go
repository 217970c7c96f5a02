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

package app

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"

	"github.com/proc7ts/http-header-value/pkg/forwarded"
	"github.com/proc7ts/http-header-value/pkg/hthv"
)

// Server answers every request with its trust-resolved forwarding
// report as JSON.
type Server struct {
	options *Options
	trust   forwarded.Trust
}

// NewServer creates a server from validated options.
func NewServer(options *Options) *Server {
	return &Server{
		options: options,
		trust:   options.Trust(),
	}
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	registerMetrics()

	ln, err := net.Listen("tcp", s.options.ListenAddr)
	if err != nil {
		return err
	}
	klog.V(0).Infof("Serving forwarding reports on %v", ln.Addr())

	srv := &http.Server{Handler: s.handler()}
	return srv.Serve(ln)
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	})
	mux.Handle("/", forwarded.Handle(s.trust, http.HandlerFunc(s.serveReport)))
	return mux
}

func (s *Server) serveReport(w http.ResponseWriter, r *http.Request) {
	report, ok := forwarded.FromContext(r.Context())
	if !ok {
		// Not routed through the middleware; resolve directly.
		report = forwarded.FromHeaders(
			forwarded.HeadersFromRequest(r), forwarded.RequestDefaults(r), s.trust)
	}

	headers := forwarded.HeadersFromRequest(r)
	source, records := chainInfo(headers)
	requestCount.WithLabelValues(source).Inc()
	chainLength.Observe(float64(records))
	if records > 0 && report["for"] == forwarded.RequestDefaults(r).For {
		untrustedCount.Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		klog.Warningf("Failed to write report: %v", err)
	}
}

// chainInfo classifies the forwarding header source of a request and
// counts the records it supplies.
func chainInfo(h forwarded.Headers) (source string, records int) {
	if !h.Forwarded.Empty() {
		for _, v := range h.Forwarded.Values() {
			records += len(hthv.Parse(v))
		}
		return sourceForwarded, records
	}
	if !h.XForwardedFor.Empty() {
		for _, v := range h.XForwardedFor.Values() {
			records += len(hthv.SplitList(v))
		}
		return sourceXForwarded, records
	}
	return sourceNone, 0
}
