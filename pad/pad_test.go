// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hbytes/constants"
	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
	"github.com/bitmark-inc/hbytes/pad"
)

func TestBits(t *testing.T) {
	tests := []struct {
		in       converter.Bits
		length   int
		expected converter.Bits
	}{
		{converter.Bits{}, 4, converter.Bits{0, 0, 0, 0}},
		{converter.Bits{1}, 4, converter.Bits{0, 0, 0, 1}},
		{converter.Bits{0, 1, 1, 0, 0}, 8, converter.Bits{0, 0, 0, 0, 1, 1, 0, 0}},
		{converter.Bits{1, 0, 1, 0}, 4, converter.Bits{1, 0, 1, 0}},
	}
	for i, item := range tests {
		result, err := pad.Bits(item.in, item.length)
		if nil != err {
			t.Errorf("%d: Bits(%s, %d) error: %s", i, item.in, item.length, err)
			continue
		}
		if !result.Equal(item.expected) {
			t.Errorf("%d: Bits(%s, %d) -> %s  expected: %s", i, item.in, item.length, result, item.expected)
		}
	}
}

func TestBitsIdempotent(t *testing.T) {
	for _, v := range []int64{0, 1, 99, 1563378693928} {
		once, err := pad.Bits(converter.FromValue(v), 64)
		require.NoError(t, err)
		twice, err := pad.Bits(once, 64)
		require.NoError(t, err)
		assert.True(t, once.Equal(twice), "idempotent for: %d", v)
	}
}

func TestBitsTooLarge(t *testing.T) {
	_, err := pad.Bits(make(converter.Bits, 37), 36)
	assert.Equal(t, fault.ErrFieldTooLarge, err)

	_, err = pad.SignedBits(make(converter.Bits, 45), 44)
	assert.Equal(t, fault.ErrFieldTooLarge, err)
}

func TestBitsDoesNotAlias(t *testing.T) {
	in := converter.Bits{0, 1}
	out, err := pad.Bits(in, 2)
	require.NoError(t, err)
	out[1] = 0
	assert.Equal(t, int8(1), in[1], "input modified")
}

// zero fill keeps a positive value, sign fill keeps a negative one
func TestPaddedValues(t *testing.T) {
	positive := int64(1563378693928)
	bits, err := pad.Bits(converter.FromValue(positive), 64)
	require.NoError(t, err)
	v, err := converter.Value(bits)
	require.NoError(t, err)
	assert.Equal(t, positive, v)

	negative := int64(-6473274)
	bits, err = pad.SignedBits(converter.FromValue(negative), 64)
	require.NoError(t, err)
	assert.Equal(t, int8(1), bits[0], "sign extended")
	v, err = converter.Value(bits)
	require.NoError(t, err)
	assert.Equal(t, negative, v)

	// round trip through hbytes as well
	h, err := converter.BitsToHBytes(bits)
	require.NoError(t, err)
	assert.Equal(t, "ffffffffff9d39c6", h)
	back, err := converter.HBytesToBits(h)
	require.NoError(t, err)
	v, err = converter.Value(back)
	require.NoError(t, err)
	assert.Equal(t, negative, v)
}

func TestHBytes(t *testing.T) {
	s, err := pad.HBytes("abc", 6, constants.NullFiller)
	assert.NoError(t, err)
	assert.Equal(t, "abc999", s)

	s, err = pad.HBytes("", constants.TagHBytesSize, constants.NullFiller)
	assert.NoError(t, err)
	assert.Equal(t, constants.NullTagHBytes, s)

	s, err = pad.HBytes("abcdef", 6, constants.NullFiller)
	assert.NoError(t, err)
	assert.Equal(t, "abcdef", s)

	_, err = pad.HBytes("abcdefa", 6, constants.NullFiller)
	assert.Equal(t, fault.ErrFieldTooLarge, err)

	s, err = pad.HBytes("1", 3, '0')
	assert.NoError(t, err)
	assert.Equal(t, "100", s)
}
