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
	"net"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/proc7ts/http-header-value/pkg/forwarded"
)

// Options captures the command line configuration of the sidecar.
type Options struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string
	// TrustedProxies are node identifiers (addresses or obfuscated
	// tokens) whose forwarding records are trusted, matched literally.
	TrustedProxies []string
	// TrustedHops is the number of proxy hops trusted regardless of
	// address. 0 trusts no hop by distance.
	TrustedHops int
	// NoXForwarded disables the legacy X-Forwarded-* fallback.
	NoXForwarded bool
}

// NewOptions returns options with defaults filled in.
func NewOptions() *Options {
	return &Options{
		ListenAddr: ":8080",
	}
}

// AddFlags registers the sidecar flags with fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ListenAddr, "listen", o.ListenAddr,
		"address to serve on")
	fs.StringSliceVar(&o.TrustedProxies, "trusted-proxy", o.TrustedProxies,
		"node identifier of a trusted proxy; repeatable")
	fs.IntVar(&o.TrustedHops, "trusted-hops", o.TrustedHops,
		"number of proxy hops to trust unconditionally")
	fs.BoolVar(&o.NoXForwarded, "no-x-forwarded", o.NoXForwarded,
		"ignore legacy X-Forwarded-* headers")
}

// Validate returns whether or not the options are usable.
func (o *Options) Validate() error {
	if _, _, err := net.SplitHostPort(o.ListenAddr); err != nil {
		return errors.Wrapf(err, "invalid listen address %q", o.ListenAddr)
	}
	if o.TrustedHops < 0 {
		return errors.Errorf("trusted-hops must not be negative, got %d", o.TrustedHops)
	}
	for _, proxy := range o.TrustedProxies {
		if strings.TrimSpace(proxy) == "" {
			return errors.New("trusted-proxy must not be blank")
		}
	}
	return nil
}

// Trust builds the forwarding trust configuration from the options.
func (o *Options) Trust() forwarded.Trust {
	var checkers []forwarded.Checker
	if o.TrustedHops > 0 {
		checkers = append(checkers, forwarded.TrustHops(o.TrustedHops))
	}
	if len(o.TrustedProxies) > 0 {
		checkers = append(checkers, forwarded.TrustAddrs(o.TrustedProxies...))
	}

	trust := forwarded.Trust{DisableXForwarded: o.NoXForwarded}
	switch len(checkers) {
	case 0:
	case 1:
		trust.Check = checkers[0]
	default:
		trust.Check = forwarded.TrustAny(checkers...)
	}
	return trust
}
