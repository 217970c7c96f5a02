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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	sourceForwarded  = "forwarded"
	sourceXForwarded = "x_forwarded"
	sourceNone       = "none"
)

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forwarded",
		Subsystem: "sidecar",
		Name:      "requests_total",
		Help:      "The number of requests served, by forwarding header source",
	}, []string{"source"})

	untrustedCount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "forwarded",
		Subsystem: "sidecar",
		Name:      "untrusted_chains_total",
		Help:      "The number of requests whose forwarding chain was fully untrusted",
	})

	chainLength = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "forwarded",
		Subsystem: "sidecar",
		Name:      "chain_length",
		Help:      "The number of forwarding records supplied per request",
		Buckets:   prometheus.LinearBuckets(0, 1, 8),
	})
)

var registerMetricsOnce sync.Once

func registerMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(requestCount)
		prometheus.MustRegister(untrustedCount)
		prometheus.MustRegister(chainLength)
		requestCount.WithLabelValues(sourceForwarded).Add(0)
		requestCount.WithLabelValues(sourceXForwarded).Add(0)
		requestCount.WithLabelValues(sourceNone).Add(0)
	})
}
