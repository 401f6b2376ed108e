// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/fault"
)

// Field - identifies a transaction body field
type Field int

// fields in wire order
const (
	SignatureMessageFragmentField = Field(iota)
	AddressField
	ValueField
	ObsoleteTagField
	TimestampField
	CurrentIndexField
	LastIndexField
	BundleField
	TrunkTransactionField
	BranchTransactionField
	TagField
	AttachmentTimestampField
	AttachmentTimestampLowerBoundField
	AttachmentTimestampUpperBoundField
	NonceField

	// this item must be last
	fieldCount = int(iota)
)

// Kind - how a field is encoded
type Kind int

// field encodings
const (
	HBytesKind   Kind = iota // copied as is, right filled with null filler
	UnsignedKind             // zero extended binary integer
	SignedKind               // sign extended binary integer followed by null filler
)

var fieldNames = [fieldCount]string{
	"signatureMessageFragment",
	"address",
	"value",
	"obsoleteTag",
	"timestamp",
	"currentIndex",
	"lastIndex",
	"bundle",
	"trunkTransaction",
	"branchTransaction",
	"tag",
	"attachmentTimestamp",
	"attachmentTimestampLowerBound",
	"attachmentTimestampUpperBound",
	"nonce",
}

var fieldKinds = [fieldCount]Kind{
	HBytesKind,   // signatureMessageFragment
	HBytesKind,   // address
	SignedKind,   // value
	HBytesKind,   // obsoleteTag
	UnsignedKind, // timestamp
	UnsignedKind, // currentIndex
	UnsignedKind, // lastIndex
	HBytesKind,   // bundle
	HBytesKind,   // trunkTransaction
	HBytesKind,   // branchTransaction
	HBytesKind,   // tag
	UnsignedKind, // attachmentTimestamp
	UnsignedKind, // attachmentTimestampLowerBound
	UnsignedKind, // attachmentTimestampUpperBound
	HBytesKind,   // nonce
}

// String - field name as used in JSON
func (f Field) String() string {
	if f < 0 || int(f) >= fieldCount {
		return "*unknown*"
	}
	return fieldNames[f]
}

// Kind - the encoding of a field
func (f Field) Kind() Kind {
	return fieldKinds[f]
}

// FieldSpec - width of one field in hbytes
//
// Useful only applies to SignedKind: the leading hbytes that carry the
// value, the remainder of the field must be null filler
type FieldSpec struct {
	Field  Field
	Width  int
	Useful int
}

// FieldLayout - position of one field within the body
type FieldLayout struct {
	FieldSpec
	Offset int
}

// End - offset just past the field
func (l FieldLayout) End() int {
	return l.Offset + l.Width
}

// Layout - immutable table of field positions shared by Pack and Unpack
type Layout struct {
	fields [fieldCount]FieldLayout
	total  int
	filler byte
}

var standardLayout = mustLayout(NewLayout(constants.TransactionHBytesSize, constants.NullFiller,
	FieldSpec{Field: SignatureMessageFragmentField, Width: constants.SignatureMessageFragmentHBytesSize},
	FieldSpec{Field: AddressField, Width: constants.HashHBytesSize},
	FieldSpec{Field: ValueField, Width: constants.ValueHBytesSize, Useful: constants.ValueUsefulHBytesSize},
	FieldSpec{Field: ObsoleteTagField, Width: constants.TagHBytesSize},
	FieldSpec{Field: TimestampField, Width: constants.NumericHBytesSize},
	FieldSpec{Field: CurrentIndexField, Width: constants.NumericHBytesSize},
	FieldSpec{Field: LastIndexField, Width: constants.NumericHBytesSize},
	FieldSpec{Field: BundleField, Width: constants.HashHBytesSize},
	FieldSpec{Field: TrunkTransactionField, Width: constants.HashHBytesSize},
	FieldSpec{Field: BranchTransactionField, Width: constants.HashHBytesSize},
	FieldSpec{Field: TagField, Width: constants.TagHBytesSize},
	FieldSpec{Field: AttachmentTimestampField, Width: constants.NumericHBytesSize},
	FieldSpec{Field: AttachmentTimestampLowerBoundField, Width: constants.NumericHBytesSize},
	FieldSpec{Field: AttachmentTimestampUpperBoundField, Width: constants.NumericHBytesSize},
	FieldSpec{Field: NonceField, Width: constants.NonceHBytesSize},
))

// StandardLayout - the network's transaction layout
func StandardLayout() *Layout {
	return standardLayout
}

// NewLayout - build a layout from field widths given in wire order
//
// every field must appear exactly once and the widths must add up
// to total
func NewLayout(total int, filler byte, specs ...FieldSpec) (*Layout, error) {
	if len(specs) != fieldCount {
		return nil, fault.ErrInvalidLayout
	}

	layout := &Layout{
		total:  total,
		filler: filler,
	}

	offset := 0
	for i, spec := range specs {
		if int(spec.Field) != i || spec.Width <= 0 {
			return nil, fault.ErrInvalidLayout
		}
		if SignedKind == spec.Field.Kind() {
			if spec.Useful <= 0 || spec.Useful > spec.Width {
				return nil, fault.ErrInvalidLayout
			}
		} else {
			spec.Useful = spec.Width
		}
		layout.fields[i] = FieldLayout{
			FieldSpec: spec,
			Offset:    offset,
		}
		offset += spec.Width
	}

	if offset != total {
		return nil, fault.ErrInvalidLayout
	}
	return layout, nil
}

// Total - length of a body in hbytes
func (layout *Layout) Total() int {
	return layout.total
}

// Filler - the null filler digit
func (layout *Layout) Filler() byte {
	return layout.filler
}

// Field - position of a single field
func (layout *Layout) Field(f Field) FieldLayout {
	return layout.fields[f]
}

// Fields - all fields in wire order
func (layout *Layout) Fields() []FieldLayout {
	fields := make([]FieldLayout, fieldCount)
	copy(fields, layout.fields[:])
	return fields
}

func mustLayout(layout *Layout, err error) *Layout {
	fault.PanicIfError("transaction layout", err)
	return layout
}
