// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/coldstackd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// BindAddress - the tcp:// endpoint for a host:port and whether it is IPv6
func BindAddress(hostPort string) (string, bool, error) {
	canonical, err := util.CanonicalIPandPort(hostPort)
	if nil != err {
		return "", false, err
	}
	return "tcp://" + canonical, strings.HasPrefix(canonical, "["), nil
}

// NewBind - bind a list of addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {
	var socket4 *zmq.Socket
	var socket6 *zmq.Socket

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := BindAddress(address)
		if nil != err {
			log.Errorf("address[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - a CURVE server socket, clients are checked by the
// ZAP handler for zapDomain
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	settings := []error{
		socket.SetCurveServer(1),
		socket.SetCurveSecretkey(string(privateKey)),
		socket.SetZapDomain(zapDomain),
		socket.SetIdentity(string(publicKey)),
		socket.SetIpv6(v6),
		socket.SetLinger(0),
		socket.SetHeartbeatIvl(heartbeatInterval),
		socket.SetHeartbeatTimeout(heartbeatTimeout),
		socket.SetHeartbeatTtl(heartbeatTTL),
	}
	for _, err := range settings {
		if nil != err {
			socket.Close()
			return nil, err
		}
	}
	return socket, nil
}
