// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - the two kinds of name used by the ledger
//
// An Address is a fixed 20 byte value (balance targets, principals,
// file owners and gateway nodes) written as 0x followed by hex.
//
// An Identity is the signing account of a caller as delivered by the
// host, written in Base58.  Identities are opaque here; no signature
// checking is done in this package.
package account
