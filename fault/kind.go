// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// names reported for rejected operations
const (
	KindUnauthorized            = "Unauthorized"
	KindInsufficientFunds       = "InsufficientFunds"
	KindInsufficientLockedFunds = "InsufficientLockedFunds"
	KindFileAlreadyExists       = "FileAlreadyExists"
	KindFileNotFound            = "FileNotFound"
	KindInvalidArgument         = "InvalidArgument"
	KindMigrationRequired       = "MigrationRequired"
	KindInternal                = "Internal"
)

// Kind - the reported name for an error
//
// errors outside the fault classes are reported as internal, as are
// the host side exists and not found errors for key, certificate
// and configuration files
func Kind(err error) string {
	switch err.(type) {
	case UnauthorisedError:
		return KindUnauthorized
	case InsufficientFundsError:
		return KindInsufficientFunds
	case InsufficientLockedFundsError:
		return KindInsufficientLockedFunds
	case ExistsError:
		if FileAlreadyExists == err {
			return KindFileAlreadyExists
		}
		return KindInternal
	case NotFoundError:
		if FileNotFound == err {
			return KindFileNotFound
		}
		return KindInternal
	case InvalidError:
		return KindInvalidArgument
	case MigrationError:
		return KindMigrationRequired
	default:
		return KindInternal
	}
}

// Format - "<module>.<Kind>" as relayed to remote callers
func Format(module string, err error) string {
	return module + "." + Kind(err)
}
