// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/util"
)

// MaximumURLLength - longest URL accepted
const MaximumURLLength = 2048

// Permission - a delegation grant for one principal
type Permission struct {
	Delegate account.Identity `json:"delegate"`
	URL      string           `json:"url"`
}

// Pack - stored form of a grant
func (p Permission) Pack() []byte {
	buffer := util.AppendBytes(nil, p.Delegate.Bytes())
	return util.AppendBytes(buffer, []byte(p.URL))
}

// UnpackPermission - decode a stored grant
func UnpackPermission(buffer []byte) (*Permission, error) {
	raw, n := util.ReadBytes(buffer, account.MinimumIdentityLength, account.MaximumIdentityLength)
	if 0 == n {
		return nil, fault.RecordCorrupted
	}
	delegate, err := account.IdentityFromBytes(raw)
	if nil != err {
		return nil, fault.RecordCorrupted
	}
	buffer = buffer[n:]

	url, n := util.ReadBytes(buffer, 0, MaximumURLLength)
	if 0 == n || n != len(buffer) {
		return nil, fault.RecordCorrupted
	}

	return &Permission{
		Delegate: delegate,
		URL:      string(url),
	}, nil
}
