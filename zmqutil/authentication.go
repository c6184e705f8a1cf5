// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - CURVE secured ZeroMQ sockets for the event stream
package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// state of the process wide ZAP handler
var authentication struct {
	sync.Mutex
	running bool
	domains map[string]struct{}
}

// StartAuthentication - start the ZAP handler if needed and let any
// CURVE client connect to sockets in the given domains
//
// event subscribers are anonymous, encryption is the only protection
func StartAuthentication(domains ...string) error {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.running {
		zmq.AuthSetVerbose(false)
		if err := zmq.AuthStart(); nil != err {
			return err
		}
		authentication.running = true
		authentication.domains = make(map[string]struct{})
	}

	for _, domain := range domains {
		if _, ok := authentication.domains[domain]; ok {
			continue
		}
		zmq.AuthCurveAdd(domain, zmq.CURVE_ALLOW_ANY)
		authentication.domains[domain] = struct{}{}
	}
	return nil
}

// StopAuthentication - stop the ZAP handler, sockets must be closed first
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.running {
		return
	}
	zmq.AuthStop()
	authentication.running = false
	authentication.domains = nil
}
