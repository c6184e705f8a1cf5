// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type UnauthorisedError GenericError
type InsufficientFundsError GenericError
type InsufficientLockedFundsError GenericError
type ExistsError GenericError
type InvalidError GenericError
type MigrationError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ProcessError("already initialised")
	ConfigurationFileNotFound  = NotFoundError("configuration file not found")
	DatabaseIsNewer            = MigrationError("database version is newer than this program")
	FileAlreadyExists          = ExistsError("file already exists")
	FileNotFound               = NotFoundError("file not found")
	GenesisAlreadyApplied      = ProcessError("genesis already applied")
	GenesisMissing             = ProcessError("genesis has not been applied")
	InsufficientFunds          = InsufficientFundsError("insufficient funds")
	InsufficientLockedFunds    = InsufficientLockedFundsError("insufficient locked funds")
	InvalidAddress             = InvalidError("invalid address")
	InvalidAmount              = InvalidError("invalid amount")
	InvalidCount               = InvalidError("invalid count")
	InvalidCursor              = InvalidError("invalid cursor")
	InvalidFileSize            = InvalidError("invalid file size")
	InvalidGatewayReference    = InvalidError("invalid gateway seed reference")
	InvalidHash                = InvalidError("invalid hash")
	InvalidIdentity            = InvalidError("invalid identity")
	InvalidIPAddress           = InvalidError("invalid IP address")
	InvalidLoggerChannel       = ProcessError("invalid logger channel")
	InvalidOperation           = InvalidError("invalid operation")
	InvalidPortNumber          = InvalidError("invalid port number")
	InvalidPublicKey           = InvalidError("invalid public key")
	InvalidPrivateKey          = InvalidError("invalid private key")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	InvalidURL                 = InvalidError("invalid URL")
	InvariantViolated          = ProcessError("ledger invariant violated")
	KeyFileAlreadyExists       = ExistsError("key file already exists")
	CertificateFileExists      = ExistsError("certificate file already exists")
	MigrationRequired          = MigrationError("schema migration required")
	MissingParameters          = InvalidError("missing parameters")
	NotInitialised             = ProcessError("not initialised")
	NumericOverflow            = InvalidError("numeric overflow")
	PermissionNotFound         = InvalidError("permission not found")
	RateLimiting               = ProcessError("rate limiting")
	RecordCorrupted            = ProcessError("record corrupted")
	SeedHasSecondaries         = InvalidError("seed gateway has secondary nodes")
	TransactionAlreadyInUse    = ProcessError("transaction already in use")
	TransactionNotInUse        = ProcessError("transaction not in use")
	Unauthorized               = UnauthorisedError("unauthorized")
	UnsupportedDatabaseVersion = MigrationError("unsupported database version")
	WrongNetworkConnection     = ProcessError("wrong network connection")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e UnauthorisedError) Error() string            { return string(e) }
func (e InsufficientFundsError) Error() string       { return string(e) }
func (e InsufficientLockedFundsError) Error() string { return string(e) }
func (e ExistsError) Error() string                  { return string(e) }
func (e InvalidError) Error() string                 { return string(e) }
func (e MigrationError) Error() string               { return string(e) }
func (e NotFoundError) Error() string                { return string(e) }
func (e ProcessError) Error() string                 { return string(e) }

// determine the class of an error
func IsErrUnauthorised(e error) bool { _, ok := e.(UnauthorisedError); return ok }
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrMigration(e error) bool    { _, ok := e.(MigrationError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrFunds(e error) bool {
	switch e.(type) {
	case InsufficientFundsError, InsufficientLockedFundsError:
		return true
	default:
		return false
	}
}
