// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package converter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hbytes/converter"
	"github.com/bitmark-inc/hbytes/fault"
)

var valueTests = []struct {
	value int64
	bits  converter.Bits
}{
	{0, converter.Bits{0}},
	{1, converter.Bits{0, 1}},
	{-1, converter.Bits{1}},
	{-2, converter.Bits{1, 0}},
	{2, converter.Bits{0, 1, 0}},
	{3, converter.Bits{0, 1, 1}},
	{-3, converter.Bits{1, 0, 1}},
	{12, converter.Bits{0, 1, 1, 0, 0}},
	{-16, converter.Bits{1, 0, 0, 0, 0}},
	{1950, converter.Bits{0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0}},
}

func TestFromValue(t *testing.T) {
	for i, item := range valueTests {
		if result := converter.FromValue(item.value); !result.Equal(item.bits) {
			t.Errorf("%d: FromValue(%d) -> %s  expected: %s", i, item.value, result, item.bits)
		}
	}
}

func TestValue(t *testing.T) {
	for i, item := range valueTests {
		result, err := converter.Value(item.bits)
		if nil != err {
			t.Errorf("%d: Value(%s) error: %s", i, item.bits, err)
			continue
		}
		if result != item.value {
			t.Errorf("%d: Value(%s) -> %d  expected: %d", i, item.bits, result, item.value)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 7, 8, -8, -9, 255, 256, -256,
		1563378693928,
		-6473274,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
		math.MaxInt64 - 1, math.MinInt64 + 1,
	}
	for _, v := range values {
		bits := converter.FromValue(v)
		result, err := converter.Value(bits)
		assert.NoError(t, err, "value: %d", v)
		assert.Equal(t, v, result, "round trip of: %d", v)
	}
}

func TestNegativeHasSignBit(t *testing.T) {
	bits := converter.FromValue(-6473274)
	assert.Equal(t, int8(1), bits[0], "negative sign bit")

	bits = converter.FromValue(6473274)
	assert.Equal(t, int8(0), bits[0], "positive sign bit")
}

func TestValueEmpty(t *testing.T) {
	_, err := converter.Value(converter.Bits{})
	assert.Equal(t, fault.ErrInvalidLength, err, "empty bits")

	_, err = converter.Value(nil)
	assert.Equal(t, fault.ErrInvalidLength, err, "nil bits")
}

func TestValueInvalidBit(t *testing.T) {
	_, err := converter.Value(converter.Bits{0, 2, 1})
	assert.Equal(t, fault.ErrInvalidBit, err, "bit value 2")
}

func TestValueLongSequence(t *testing.T) {

	// 100 bits of sign extension on -3
	bits := make(converter.Bits, 100)
	for i := range bits {
		bits[i] = 1
	}
	bits[98] = 0
	v, err := converter.Value(bits)
	assert.NoError(t, err, "sign extended")
	assert.Equal(t, int64(-3), v, "sign extended value")

	// a set bit beyond 64 bits of precision
	bits = make(converter.Bits, 80)
	bits[5] = 1
	bits[79] = 1
	_, err = converter.Value(bits)
	assert.Equal(t, fault.ErrFieldTooLarge, err, "overflow")

	// exactly at the 64 bit boundary
	bits = make(converter.Bits, 65)
	bits[1] = 1
	_, err = converter.Value(bits)
	assert.Equal(t, fault.ErrFieldTooLarge, err, "sign flip at bit 64")
}

func TestBitsString(t *testing.T) {
	assert.Equal(t, "01100", converter.Bits{0, 1, 1, 0, 0}.String())
	assert.Equal(t, "", converter.Bits{}.String())
}
