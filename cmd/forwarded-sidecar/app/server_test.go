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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveReport(t *testing.T, options *Options, configure func(*http.Request)) map[string]string {
	t.Helper()

	r := httptest.NewRequest("GET", "http://example.com/", nil)
	configure(r)

	w := httptest.NewRecorder()
	NewServer(options).handler().ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var report map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	return report
}

func TestServeReportTrustedProxy(t *testing.T) {
	options := NewOptions()
	options.TrustedHops = 1

	report := serveReport(t, options, func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "198.51.100.9")
		r.Header.Set("X-Forwarded-Proto", "https")
	})

	assert.Equal(t, "198.51.100.9", report["for"])
	assert.Equal(t, "https", report["proto"])
	assert.Equal(t, "example.com", report["host"])
}

func TestServeReportUntrustedChain(t *testing.T) {
	report := serveReport(t, NewOptions(), func(r *http.Request) {
		r.Header.Set("Forwarded", "for=198.51.100.9;proto=https")
	})

	// Nothing is trusted by default; the report falls back to the
	// connection facts.
	assert.Equal(t, "192.0.2.1:1234", report["for"])
	assert.Equal(t, "http", report["proto"])
}

func TestServeReportForwardedHeader(t *testing.T) {
	options := NewOptions()
	options.TrustedProxies = []string{"198.51.100.9"}

	report := serveReport(t, options, func(r *http.Request) {
		r.Header.Set("Forwarded", "for=198.51.100.9;host=api.example.com")
	})

	assert.Equal(t, "198.51.100.9", report["for"])
	assert.Equal(t, "api.example.com", report["host"])
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "http://example.com/healthz", nil)
	NewServer(NewOptions()).handler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	registerMetrics()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "http://example.com/metrics", nil)
	NewServer(NewOptions()).handler().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "forwarded_sidecar_requests_total")
}
