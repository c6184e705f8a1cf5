// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package content - files, gateway nodes and node URLs
//
// The file counters always equal the number of live file records and
// the sum of their sizes.
//
// A gateway node is either a seed or a secondary that references a
// registered seed.  Secondaries cannot be chained, and a seed that
// still has secondaries cannot itself become a secondary.
package content
