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

// forwarded-sidecar answers every request with the trust-resolved
// forwarding record of that request, serialized as JSON. It is meant
// to sit behind a proxy chain for debugging and as a worked example of
// the forwarded package.
package main

import (
	goflag "flag"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/proc7ts/http-header-value/cmd/forwarded-sidecar/app"
)

func main() {
	options := app.NewOptions()
	options.AddFlags(pflag.CommandLine)

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	if err := options.Validate(); err != nil {
		klog.Fatalf("Invalid options: %v", err)
	}

	server := app.NewServer(options)
	klog.Fatal(server.Run())
}
