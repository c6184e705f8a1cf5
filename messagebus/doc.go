// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queue of ledger events waiting to be broadcast
//
// The state machine must never wait on a slow subscriber, so a full
// queue drops the newest message and counts it.
package messagebus
