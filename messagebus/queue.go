// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/event"
)

// QueueSize - default number of buffered messages
const QueueSize = 1000

// Message - one event in wire form
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - bounded FIFO of messages
type Queue struct {
	c       chan Message
	dropped counter.Counter
	log     *logger.L
}

// New - create a queue holding up to size messages
func New(size int, log *logger.L) *Queue {
	if size <= 0 {
		size = QueueSize
	}
	return &Queue{
		c:   make(chan Message, size),
		log: log,
	}
}

// Send - queue a message without blocking
func (q *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case q.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		n := q.dropped.Increment()
		if nil != q.log {
			q.log.Warnf("queue full, dropped: %s  total dropped: %d", command, n)
		}
		return false
	}
}

// Chan - channel to read messages from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - number of messages discarded because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}

// Publish - queue an event as its kind, JSON payload and digest
func (q *Queue) Publish(e event.Event) {
	payload, err := e.Marshal()
	if nil != err {
		if nil != q.log {
			q.log.Errorf("event: %s  marshal error: %s", e.Kind, err)
		}
		return
	}
	digest, err := e.Digest()
	if nil != err {
		if nil != q.log {
			q.log.Errorf("event: %s  digest error: %s", e.Kind, err)
		}
		return
	}
	q.Send(string(e.Kind), payload, digest[:])
}
