// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrFieldTooLarge        = LengthError("field too large")
	ErrHashCountMismatch    = LengthError("hash count does not match hbytes count")
	ErrInvalidASCII         = InvalidError("conversion to hbytes requires input to be encoded in ascii")
	ErrInvalidBit           = InvalidError("bit is not 0 or 1")
	ErrInvalidCharacter     = InvalidError("invalid hbytes character")
	ErrInvalidCommand       = InvalidError("invalid command format")
	ErrInvalidConfiguration = InvalidError("configuration did not return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidHash          = InvalidError("invalid hash")
	ErrInvalidHBytes        = RecordError("invalid hbytes")
	ErrInvalidLayout        = InvalidError("invalid transaction layout")
	ErrInvalidLength        = LengthError("illegal bits length")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOddLength     = LengthError("conversion from hbytes requires length of hbytes to be even")
	ErrInvalidResponse      = ProcessError("invalid response")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTag           = InvalidError("invalid tag")
	ErrInvalidTxHex         = InvalidError("invalid transaction hex")
	ErrInvalidURI           = InvalidError("invalid uri")
	ErrMissingFeedAddress   = InvalidError("feed address is required")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrReadOnly             = ProcessError("database is read only")
	ErrTransactionNotFound  = NotFoundError("transaction not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// RequestError - a failed node command, carries the node's reason
func RequestError(reason string) error {
	return ProcessError("Request error: " + reason)
}
