// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package core - the ledger as seen by the RPC services
package core

import (
	"errors"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/operation"
	"github.com/bitmark-inc/coldstackd/record"
)

//go:generate mockgen -destination=../mocks/core.go -package=mocks github.com/bitmark-inc/coldstackd/rpc/core Core

// module name used in error strings
const module = "coldStack"

// Core - operations and queries of the state machine
type Core interface {
	Apply(caller account.Identity, op operation.Operation) (event.Event, error)

	Admin() (account.Identity, error)
	Balance(address account.Address) (*uint256.Int, error)
	TotalIssuance() (*uint256.Int, error)
	LockedFunds() (*uint256.Int, error)
	FilePermission(principal account.Address) (*record.Permission, error)
	BillingPermission(principal account.Address) (*record.Permission, error)
	Gateways() ([]record.Gateway, error)
	NodeURL(address account.Address) (string, bool)
	File(owner account.Address, name record.Hash) (*record.File, error)
	Counters() (content.Counters, error)
	Version() (int, error)
}

// Receipt - reply to an accepted submission
type Receipt struct {
	ID      string       `json:"id"`
	Kind    event.Kind   `json:"kind"`
	Digest  event.Digest `json:"digest"`
	Payload interface{}  `json:"payload"`
}

// Submitter - apply submissions one at a time
type Submitter struct {
	sync.Mutex
	core Core
	log  *logger.L
}

// NewSubmitter - serialize access to c
func NewSubmitter(c Core, log *logger.L) *Submitter {
	return &Submitter{
		core: c,
		log:  log,
	}
}

// Submit - apply op for caller and return its receipt
func (s *Submitter) Submit(caller account.Identity, op operation.Operation) (*Receipt, error) {
	id := uuid.New().String()

	s.Lock()
	e, err := s.core.Apply(caller, op)
	s.Unlock()

	if nil != err {
		s.log.Infof("receipt: %s  operation: %s  caller: %s  error: %s", id, op.Name(), caller, err)
		return nil, Error(err)
	}

	digest, err := e.Digest()
	if nil != err {
		s.log.Errorf("receipt: %s  digest error: %s", id, err)
		return nil, Error(err)
	}

	s.log.Infof("receipt: %s  operation: %s  event: %s  digest: %s", id, op.Name(), e.Kind, digest)

	return &Receipt{
		ID:      id,
		Kind:    e.Kind,
		Digest:  digest,
		Payload: e.Payload,
	}, nil
}

// Error - convert an error to its wire form coldStack.<Kind>
func Error(err error) error {
	if nil == err {
		return nil
	}
	return errors.New(fault.Format(module, err))
}
