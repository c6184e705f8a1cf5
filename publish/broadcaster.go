// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/messagebus"
	"github.com/bitmark-inc/coldstackd/zmqutil"
)

const (
	broadcasterZapDomain = "coldstack-events"
)

// the part of a socket needed to send one message
type sender interface {
	Send(data string, flags zmq.Flag) (int, error)
	SendBytes(data []byte, flags zmq.Flag) (int, error)
}

type broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.Queue) error {
	log := logger.New("broadcaster")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	return nil
}

// Run - forward queued events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  frames: %d", item.Command, 1+len(item.Parameters))
			brdc.send(brdc.socket4, &item)
			brdc.send(brdc.socket6, &item)
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) send(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}
	if err := sendMessage(socket, item); nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
	}
}

// a slow subscriber loses messages rather than blocking the node
func sendMessage(socket sender, item *messagebus.Message) error {
	flags := zmq.DONTWAIT
	if 0 != len(item.Parameters) {
		flags |= zmq.SNDMORE
	}
	if _, err := socket.Send(item.Command, flags); nil != err {
		return err
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			return err
		}
	}
	return nil
}
