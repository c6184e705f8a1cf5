// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 20 byte account address
// 4. amount       = 32 byte big endian unsigned integer
// 5. count        = big endian uint64 (8 bytes)
// 6. identity     = raw caller identity bytes (32..48 bytes)
// 7. varbytes     = varint64 length ++ bytes
//
// Administration:
//
//	K ++ "admin"               - admin identity
//	                             data: identity
//
// Totals:
//
//	S ++ "issuance"            - total issuance
//	                             data: amount
//	S ++ "locked"              - locked funds
//	                             data: amount
//	S ++ "file-count"          - number of live files
//	                             data: count
//	S ++ "file-size"           - sum of live file sizes
//	                             data: amount
//
// Ledger:
//
//	B ++ address               - account balance, absent when zero
//	                             data: amount
//
// Permissions:
//
//	P ++ principal address     - file permission grant
//	                             data: varbytes(identity) ++ varbytes(URL)
//	Q ++ principal address     - billing permission grant
//	                             data: varbytes(identity) ++ varbytes(URL)
//
// Content:
//
//	U ++ address               - node URL lookup
//	                             data: URL
//	F ++ owner ++ name hash    - file record
//	                             data: varbytes(content hash) ++ size(count) ++ gateway address
//	G ++ node address          - gateway node (schema 2)
//	                             data: 0x00 ++ varbytes(URL)                       (seed)
//	                             data: 0x01 ++ seed address ++ varbytes(URL)       (secondary)
//	g ++ node address          - legacy gateway seed index (schema 1)
//	                             data: 0x00                                        (seed)
//	                             data: 0x01 ++ seed address                        (secondary)
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
