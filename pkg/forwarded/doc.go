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

// Package forwarded resolves the forwarding record a server may trust
// from the proxy-supplied Forwarded (RFC 7239) or legacy X-Forwarded-*
// headers.
//
// Proxy records are attacker-controllable: any client can send a
// Forwarded header of its own making. The resolver therefore walks the
// record chain from the hop nearest the server outward, extending trust
// hop by hop under a caller-supplied policy, and always falls back to
// the locally observed connection facts when no hop is trustworthy.
package forwarded
