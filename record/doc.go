// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the values kept in the storage pools
//
// each type has a Pack method producing the stored bytes and an
// Unpack function that rejects anything malformed with
// fault.RecordCorrupted
package record
