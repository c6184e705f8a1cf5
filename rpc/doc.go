// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS access to the ledger
//
// Submissions carry the caller identity supplied by the trusted
// signing front end.  Every accepted submission is applied under a
// single lock and answered with a receipt.
package rpc
