// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/operation"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/fixtures"
	"github.com/bitmark-inc/coldstackd/rpc/mocks"
)

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	caller := fixtures.Identity(0xa0)
	op := operation.Test{Value: 42}
	e := event.Event{Kind: event.KindTest, Payload: event.Test{Value: 42}}

	c := mocks.NewMockCore(ctl)
	c.EXPECT().Apply(caller, op).Return(e, nil).Times(1)

	s := core.NewSubmitter(c, logger.New(fixtures.LogCategory))
	receipt, err := s.Submit(caller, op)
	assert.Nil(t, err, "submit")

	digest, _ := e.Digest()
	assert.Equal(t, event.KindTest, receipt.Kind, "kind")
	assert.Equal(t, digest, receipt.Digest, "digest")
	assert.Equal(t, e.Payload, receipt.Payload, "payload")
	assert.Equal(t, 36, len(receipt.ID), "receipt id")
}

func TestSubmitError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCore(ctl)
	c.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(event.Event{}, fault.InsufficientFunds).Times(1)

	s := core.NewSubmitter(c, logger.New(fixtures.LogCategory))
	receipt, err := s.Submit(fixtures.Identity(0xb0), operation.Withdraw{})
	assert.Nil(t, receipt, "receipt on error")
	assert.Equal(t, "coldStack.InsufficientFunds", err.Error(), "error string")
}

func TestError(t *testing.T) {
	items := []struct {
		err      error
		expected string
	}{
		{fault.Unauthorized, "coldStack.Unauthorized"},
		{fault.InsufficientLockedFunds, "coldStack.InsufficientLockedFunds"},
		{fault.FileAlreadyExists, "coldStack.FileAlreadyExists"},
		{fault.FileNotFound, "coldStack.FileNotFound"},
		{fault.InvalidHash, "coldStack.InvalidArgument"},
		{fault.MigrationRequired, "coldStack.MigrationRequired"},
		{errors.New("disk on fire"), "coldStack.Internal"},
	}

	for _, item := range items {
		assert.Equal(t, item.expected, core.Error(item.err).Error(), item.err.Error())
	}
	assert.Nil(t, core.Error(nil), "nil error")
}
