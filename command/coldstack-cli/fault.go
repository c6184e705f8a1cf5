// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/coldstackd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingAddress  = fault.InvalidError("address is required")
	ErrMissingAmount   = fault.InvalidError("amount is required")
	ErrMissingDelegate = fault.InvalidError("delegate identity is required")
	ErrMissingHash     = fault.InvalidError("hash is required")
	ErrMissingIdentity = fault.InvalidError("calling identity is required, use --identity")
	ErrMissingURL      = fault.InvalidError("URL is required")
)
